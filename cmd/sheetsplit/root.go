package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(app *cliContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetsplit",
		Short: "Split a spreadsheet into smaller spreadsheets",
		Long: `sheetsplit splits the first worksheet of an Excel file into several
workbooks, each holding the header row and at most max_rows data rows.
Previous outputs are moved into a timestamped backup directory first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Configuration file (default: ./sheetsplit.toml or ~/.config/sheetsplit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&app.logFormat, "log-format", "", "Log format: auto, console, json")

	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newPlanCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}
