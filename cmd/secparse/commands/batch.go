package commands

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/paulgb/sec-data-parser/internal/batch"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Parse every archive under a directory and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		results, err := batch.Run(ctx, args[0], batchWorkers, log)
		if err != nil {
			return err
		}

		summary := batch.Summarize(results)
		fmt.Printf("archives: %d  parsed: %d  failed: %d  documents: %d\n",
			summary.Total, summary.Parsed, summary.Failed, summary.Documents)

		forms := make([]string, 0, len(summary.ByFormType))
		for form := range summary.ByFormType {
			forms = append(forms, form)
		}
		sort.Strings(forms)
		for _, form := range forms {
			fmt.Printf("  %-12s %d\n", form, summary.ByFormType[form])
		}

		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.Path, r.Err)
			}
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d archives failed", summary.Failed, summary.Total)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", runtime.NumCPU(), "number of parallel parse workers")
}
