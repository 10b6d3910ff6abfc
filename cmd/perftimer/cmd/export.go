package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/y24/perftimer/pkg/perftimer"
)

// exportCmd copies a measurement log into a fresh CSV file.
var exportCmd = &cobra.Command{
	Use:   "export [logfile]",
	Short: "Re-export a measurement log to a new CSV file",
	Long: `Read a CSV measurement log and write all of its records to a new file,
leaving the source log untouched. Useful for snapshotting a log that is
still being appended to.

Examples:
  perftimer export
  perftimer export results.csv --output snapshot.csv`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		path := cfg.LogPath
		if len(args) > 0 {
			path = args[0]
		}

		records, err := perftimer.LoadRecords(path)
		if err != nil {
			return fmt.Errorf("loading measurement log: %w", err)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			name := fmt.Sprintf("performance_export_%s.csv", time.Now().Format("20060102_150405"))
			outputFile = filepath.Join(cfg.Export.Dir, name)
		}

		if err := perftimer.WriteRecords(outputFile, records); err != nil {
			return fmt.Errorf("exporting measurement log: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(records), outputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "destination file (default is a timestamped name in export.dir)")
}
