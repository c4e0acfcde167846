package commands

import (
	"bytes"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/paulgb/sec-data-parser/internal/batch"
	"github.com/paulgb/sec-data-parser/internal/report"
)

var (
	reportOut     string
	reportHTML    bool
	reportWorkers int
)

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Parse a directory of archives and write a markdown report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		results, err := batch.Run(ctx, args[0], reportWorkers, log)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := report.WriteMarkdown(&buf, args[0], results); err != nil {
			return err
		}

		out := buf.Bytes()
		if reportHTML {
			if out, err = report.RenderHTML(buf.Bytes()); err != nil {
				return err
			}
		}
		if err := os.WriteFile(reportOut, out, 0o644); err != nil {
			return err
		}
		log.Info("report written", "path", reportOut, "archives", len(results))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "report.md", "output path")
	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "render the report as HTML")
	reportCmd.Flags().IntVar(&reportWorkers, "workers", runtime.NumCPU(), "number of parallel parse workers")
}
