package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "libraryhub",
	Short: "Library circulation simulator",
	Long: `LibraryHub manages users, catalog items and borrow/return transactions
in memory, persisting transactions across runs. Run without arguments for
the interactive console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		runShell(a)
		return nil
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
