package cmd

import (
	"log/slog"
	"os"

	"libraryhub/config"
	"libraryhub/library"
	"libraryhub/storage"
)

// app wires the store, policy, engine and session together the same way for
// every subcommand.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	gateway  library.Gateway
	store    *library.Store
	notifier *library.Notifier
	engine   *library.Engine
	session  *library.Session

	closeGateway func() error
}

func newApp() (*app, error) {
	cfg := config.NewConfig()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	a := &app{cfg: cfg, log: log}

	sqlite, err := storage.OpenSQLite(cfg.Database.Path)
	if err != nil {
		// Persistence is best-effort: fall back to a session-scoped store.
		log.Error("open database, continuing without durable storage", "path", cfg.Database.Path, "err", err)
		a.gateway = storage.NewMemory()
	} else {
		a.gateway = sqlite
		a.closeGateway = sqlite.Close
	}

	a.store = library.NewStore()
	if err := library.SeedDemo(a.store); err != nil {
		return nil, err
	}

	policy := library.NewPolicy(
		map[library.Role]int{
			library.RoleStudent:   cfg.Policy.StudentDays,
			library.RoleFaculty:   cfg.Policy.FacultyDays,
			library.RoleLibrarian: cfg.Policy.LibrarianDays,
		},
		map[library.Role]int{
			library.RoleStudent:   cfg.Policy.StudentLimit,
			library.RoleFaculty:   cfg.Policy.FacultyLimit,
			library.RoleLibrarian: cfg.Policy.LibrarianLimit,
		},
		map[library.ItemType]float64{
			library.ItemBook:     cfg.Policy.BookFineRate,
			library.ItemMagazine: cfg.Policy.MagazineFineRate,
			library.ItemJournal:  cfg.Policy.JournalFineRate,
		},
	)

	a.notifier = library.NewNotifier(log)
	a.engine = library.NewEngine(a.store, policy, library.SystemClock, a.notifier, a.gateway, log)
	a.session = library.NewSession(a.gateway, a.notifier, log, cfg.UI.DefaultTheme)

	a.engine.LoadTransactions()
	a.session.Restore(a.store)
	return a, nil
}

func (a *app) Close() {
	if a.closeGateway != nil {
		if err := a.closeGateway(); err != nil {
			a.log.Error("close database", "err", err)
		}
	}
}
