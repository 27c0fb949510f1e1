// Package config loads application settings from environment variables with
// sensible defaults. Circulation policy overrides are applied once at
// startup; the policy table itself stays read-only afterwards.
package config

import (
	"github.com/spf13/viper"
)

const DefaultDatabasePath = "libraryhub.db"

type (
	Config struct {
		Database
		UI
		Policy
	}

	Database struct {
		Path string
	}

	UI struct {
		DefaultTheme string // "light" or "dark"
	}

	Policy struct {
		StudentDays   int
		FacultyDays   int
		LibrarianDays int

		StudentLimit   int
		FacultyLimit   int
		LibrarianLimit int

		BookFineRate     float64
		MagazineFineRate float64
		JournalFineRate  float64
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("libraryhub")
	v.AutomaticEnv()

	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("default_theme", "light")

	v.SetDefault("student_days", 14)
	v.SetDefault("faculty_days", 30)
	v.SetDefault("librarian_days", 60)
	v.SetDefault("student_limit", 5)
	v.SetDefault("faculty_limit", 10)
	v.SetDefault("librarian_limit", 15)
	v.SetDefault("book_fine_rate", 0.50)
	v.SetDefault("magazine_fine_rate", 0.25)
	v.SetDefault("journal_fine_rate", 0.75)

	return &Config{
		Database: Database{
			Path: v.GetString("database_path"),
		},
		UI: UI{
			DefaultTheme: v.GetString("default_theme"),
		},
		Policy: Policy{
			StudentDays:      v.GetInt("student_days"),
			FacultyDays:      v.GetInt("faculty_days"),
			LibrarianDays:    v.GetInt("librarian_days"),
			StudentLimit:     v.GetInt("student_limit"),
			FacultyLimit:     v.GetInt("faculty_limit"),
			LibrarianLimit:   v.GetInt("librarian_limit"),
			BookFineRate:     v.GetFloat64("book_fine_rate"),
			MagazineFineRate: v.GetFloat64("magazine_fine_rate"),
			JournalFineRate:  v.GetFloat64("journal_fine_rate"),
		},
	}
}
