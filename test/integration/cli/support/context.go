// Package support provides the godog test context and step definitions for
// the perftimer CLI integration suite.
package support

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/y24/perftimer/cmd/perftimer/cmd"
	"github.com/y24/perftimer/pkg/perftimer"
)

// TestContext carries per-scenario state: a scratch directory, the seeded
// log, and the output of the last command execution.
type TestContext struct {
	workDir string
	logPath string
	output  *bytes.Buffer
	lastErr error
}

// NewTestContext creates a scratch directory for one scenario.
func NewTestContext() (*TestContext, error) {
	workDir, err := os.MkdirTemp("", "perftimer-cli-test-*")
	if err != nil {
		return nil, fmt.Errorf("creating work dir: %w", err)
	}
	return &TestContext{
		workDir: workDir,
		logPath: filepath.Join(workDir, "performance_log.csv"),
		output:  &bytes.Buffer{},
	}, nil
}

// Cleanup removes the scenario scratch directory.
func (tc *TestContext) Cleanup() error {
	return os.RemoveAll(tc.workDir)
}

// RegisterSteps wires all step definitions into the scenario context.
func (tc *TestContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a measurement log with the following records:$`, tc.aMeasurementLogWith)
	sc.Step(`^I run the report command with format "([^"]*)"$`, tc.iRunReportWithFormat)
	sc.Step(`^I run the report command against a missing log$`, tc.iRunReportAgainstMissingLog)
	sc.Step(`^I export the log to "([^"]*)"$`, tc.iExportTheLogTo)
	sc.Step(`^the command should succeed$`, tc.theCommandShouldSucceed)
	sc.Step(`^the command should fail$`, tc.theCommandShouldFail)
	sc.Step(`^the output should contain "([^"]*)"$`, tc.theOutputShouldContain)
	sc.Step(`^the file "([^"]*)" should contain (\d+) records$`, tc.theFileShouldContainRecords)
}

func (tc *TestContext) aMeasurementLogWith(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one record row")
	}

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	records := make([]perftimer.Record, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected rows of (label, seconds), got %d cells", len(row.Cells))
		}
		seconds, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return fmt.Errorf("parsing seconds %q: %w", row.Cells[1].Value, err)
		}
		records = append(records, perftimer.Record{
			Start:   start,
			End:     start.Add(time.Duration(seconds * float64(time.Second))),
			Seconds: seconds,
			Label:   row.Cells[0].Value,
		})
	}

	return perftimer.WriteRecords(tc.logPath, records)
}

func (tc *TestContext) runCommand(args ...string) {
	root := cmd.GetRootCommand()
	tc.output.Reset()
	root.SetOut(tc.output)
	root.SetErr(tc.output)
	root.SetArgs(args)
	tc.lastErr = root.Execute()
}

func (tc *TestContext) iRunReportWithFormat(format string) error {
	tc.runCommand("report", tc.logPath, "--format", format)
	return nil
}

func (tc *TestContext) iRunReportAgainstMissingLog() error {
	tc.runCommand("report", filepath.Join(tc.workDir, "missing.csv"), "--format", "text")
	return nil
}

func (tc *TestContext) iExportTheLogTo(name string) error {
	tc.runCommand("export", tc.logPath, "--output", filepath.Join(tc.workDir, name))
	return nil
}

func (tc *TestContext) theCommandShouldSucceed() error {
	if tc.lastErr != nil {
		return fmt.Errorf("command failed: %w\noutput:\n%s", tc.lastErr, tc.output.String())
	}
	return nil
}

func (tc *TestContext) theCommandShouldFail() error {
	if tc.lastErr == nil {
		return fmt.Errorf("expected the command to fail, output:\n%s", tc.output.String())
	}
	return nil
}

func (tc *TestContext) theOutputShouldContain(expected string) error {
	if !bytes.Contains(tc.output.Bytes(), []byte(expected)) {
		return fmt.Errorf("output does not contain %q:\n%s", expected, tc.output.String())
	}
	return nil
}

func (tc *TestContext) theFileShouldContainRecords(name string, count int) error {
	records, err := perftimer.LoadRecords(filepath.Join(tc.workDir, name))
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	if len(records) != count {
		return fmt.Errorf("expected %d records in %s, got %d", count, name, len(records))
	}
	return nil
}
