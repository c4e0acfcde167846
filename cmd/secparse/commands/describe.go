package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/paulgb/sec-data-parser/filing"
	"github.com/paulgb/sec-data-parser/internal/report"
)

var describeJSON bool

var describeCmd = &cobra.Command{
	Use:   "describe <archive>",
	Short: "Parse one archive and print its submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := filing.ParseFile(args[0])
		if err != nil {
			return err
		}
		if describeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sub)
		}
		report.Describe(os.Stdout, sub)
		return nil
	},
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "emit the submission as JSON instead of the colorized view")
}
