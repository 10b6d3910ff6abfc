package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/y24/perftimer/internal/report"
	"github.com/y24/perftimer/pkg/perftimer"
)

// reportCmd summarizes a measurement log per operation label.
var reportCmd = &cobra.Command{
	Use:   "report [logfile]",
	Short: "Summarize a measurement log per operation label",
	Long: `Read a CSV measurement log and print count, total, min, max, and mean
duration per operation label, in the order labels first appear in the log.

Examples:
  perftimer report
  perftimer report results.csv --format json
  perftimer report results.csv --output summary.csv --format csv`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		path := cfg.LogPath
		if len(args) > 0 {
			path = args[0]
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = cfg.Report.Format
		}

		records, err := perftimer.LoadRecords(path)
		if err != nil {
			return fmt.Errorf("loading measurement log: %w", err)
		}

		summaries := report.Summarize(records)
		output, err := report.Format(summaries, format)
		if err != nil {
			return err
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
				return fmt.Errorf("failed to write report file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputFile)
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("format", "f", "", "output format: text, json, or csv")
	reportCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
}
