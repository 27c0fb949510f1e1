package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"libraryhub/config"
	"libraryhub/library"
	"libraryhub/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear persisted transactions, session and theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		gw, err := storage.OpenSQLite(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer gw.Close()

		for _, key := range []string{library.KeyTransactions, library.KeySession, library.KeyTheme} {
			if err := gw.Remove(key); err != nil {
				return err
			}
		}
		fmt.Println("Persisted state cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
