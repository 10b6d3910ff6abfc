package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/y24/perftimer/pkg/perftimer"
)

// demoCmd runs a scripted measurement session against the configured log,
// standing in for the UI automation script that normally drives the library.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted set of timed operations",
	Long: `Run a short scripted measurement session: a few named operations with
simulated work, plus one operation repeated with sequence numbers. Every
measurement is appended to the configured log file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		timer := perftimer.New(
			perftimer.WithLogPath(cfg.LogPath),
			perftimer.WithLogger(slog.Default()),
		)

		operations := []struct {
			label string
			work  time.Duration
		}{
			{"save screen", 600 * time.Millisecond},
			{"load data", 400 * time.Millisecond},
		}

		for _, op := range operations {
			timer.Start(op.label)
			time.Sleep(op.work)
			rec, err := timer.Stop()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1fs\n", rec.Label, rec.Seconds)
		}

		// The same operation repeated, tagged with its iteration number
		for i := 1; i <= 3; i++ {
			timer.StartSequence("process file", i)
			time.Sleep(time.Duration(i) * 200 * time.Millisecond)
			rec, err := timer.Stop()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d: %.1fs\n", rec.Label, i, rec.Seconds)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d measurements appended to %s\n",
			len(timer.Records()), cfg.LogPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
