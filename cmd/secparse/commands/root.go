// Package commands implements the secparse CLI.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "secparse",
	Short: "Parse SEC EDGAR filing archives",
	Long: `secparse reads EDGAR dissemination archives (.nc files), decodes the
pseudo-SGML header and the attached documents, and exposes the result as a
typed submission: on the terminal, as a markdown report, or over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
