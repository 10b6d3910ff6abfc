package perftimer

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultLogPath is the log file used when no other path is configured.
const DefaultLogPath = "performance_log.csv"

// Observer receives the duration of every successful measurement.
// Implementations must not block; Stop calls it synchronously.
type Observer interface {
	ObserveDuration(label string, seconds float64)
}

// pending holds the state captured by Start until the matching Stop.
type pending struct {
	start    time.Time
	label    string
	sequence *int
}

// Timer tracks one open measurement interval at a time and accumulates
// completed records. It is meant to be driven from a single goroutine.
type Timer struct {
	logPath  string
	logger   *slog.Logger
	now      func() time.Time
	observer Observer

	pending *pending
	records []Record
}

// Option configures a Timer.
type Option func(*Timer)

// WithLogPath sets the CSV log destination. The file is not created until
// the first record is written.
func WithLogPath(path string) Option {
	return func(t *Timer) { t.logPath = path }
}

// WithLogger sets the logger used for lifecycle and misuse messages.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Timer) { t.logger = logger }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithObserver registers an Observer notified on every successful Stop.
func WithObserver(o Observer) Option {
	return func(t *Timer) { t.observer = o }
}

// New creates a timer writing to DefaultLogPath unless configured otherwise.
func New(opts ...Option) *Timer {
	t := &Timer{
		logPath: DefaultLogPath,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetLogPath changes the CSV log destination. An existing file at the old
// path is left untouched; the new file is created on the next write.
func (t *Timer) SetLogPath(path string) {
	t.logPath = path
}

// LogPath returns the current CSV log destination.
func (t *Timer) LogPath() string {
	return t.logPath
}

// Start opens a measurement interval for the given operation label. The
// current time is captured rounded to 0.1s. If an interval is already open
// it is discarded with a warning; no record is produced for it.
func (t *Timer) Start(label string) {
	t.startAt(label, nil)
}

// StartSequence is Start with an iteration number attached, for timing the
// same operation repeatedly (1st run, 2nd run, ...).
func (t *Timer) StartSequence(label string, sequence int) {
	t.startAt(label, &sequence)
}

func (t *Timer) startAt(label string, sequence *int) {
	if t.pending != nil {
		t.logger.Warn("start called with a measurement already open, discarding it",
			"label", t.pending.label)
	}
	start := roundCoarse(t.now())
	t.pending = &pending{start: start, label: label, sequence: sequence}
	t.logger.Debug("timer started",
		"label", label, "start", start.Format(TimestampLayout))
}

// Stop closes the open interval and returns the completed record. The record
// is appended to the in-memory list and one row is appended to the CSV log,
// creating the file and header on first write.
//
// Calling Stop with no open interval logs a warning and returns (nil, nil).
// If the log write fails the record is still kept in memory and returned
// alongside the error, so it remains exportable.
func (t *Timer) Stop() (*Record, error) {
	if t.pending == nil {
		t.logger.Warn("stop called without a matching start")
		return nil, nil
	}

	end := roundCoarse(t.now())
	p := t.pending
	t.pending = nil

	rec := Record{
		Start:    p.start,
		End:      end,
		Seconds:  coarseSeconds(end.Sub(p.start)),
		Label:    p.label,
		Sequence: p.sequence,
	}
	t.records = append(t.records, rec)

	if t.observer != nil {
		t.observer.ObserveDuration(rec.Label, rec.Seconds)
	}
	t.logger.Debug("timer stopped", "label", rec.Label, "seconds", rec.Seconds)

	if err := appendRecord(t.logPath, rec); err != nil {
		return &rec, fmt.Errorf("appending measurement to %s: %w", t.logPath, err)
	}
	return &rec, nil
}

// Records returns a copy of all completed measurements in insertion order.
func (t *Timer) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// ClearRecords empties the in-memory record list. Log files already written
// are not touched.
func (t *Timer) ClearRecords() {
	t.records = nil
}

// ExportRecords writes every in-memory record to a new CSV file, independent
// of the primary log. An empty path generates a timestamped filename. The
// path written is returned.
func (t *Timer) ExportRecords(path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("performance_export_%s.csv", t.now().Format("20060102_150405"))
	}
	if err := WriteRecords(path, t.records); err != nil {
		return "", fmt.Errorf("exporting %d records: %w", len(t.records), err)
	}
	t.logger.Debug("records exported", "path", path, "count", len(t.records))
	return path, nil
}
