// Package perftimer measures elapsed wall-clock time for discrete named
// operations and appends each completed measurement to a CSV log.
//
// The package is built for UI automation scripts: one timer instance tracks
// one open interval at a time, and every Stop produces one immutable Record
// that is kept in memory and written to the log file immediately. Timing is
// deliberately coarse; all timestamps are rounded to 0.1s before any
// arithmetic, so durations are always a non-negative multiple of 0.1s.
package perftimer

import (
	"math"
	"strconv"
	"time"
)

// Resolution is the measurement granularity. Timestamps are rounded to the
// nearest multiple of this before durations are computed.
const Resolution = 100 * time.Millisecond

// TimestampLayout is the format used for timestamps in CSV logs, with a
// single fractional digit matching the 0.1s resolution.
const TimestampLayout = "2006-01-02 15:04:05.0"

// Record is one completed start/stop measurement. Records are created
// atomically at stop-time and never mutated afterwards.
type Record struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Seconds  float64   `json:"duration_seconds"`
	Label    string    `json:"label"`
	Sequence *int      `json:"sequence,omitempty"`
}

// Duration returns the measured duration as a time.Duration.
func (r Record) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// csvRow serializes the record into the column order of the log header.
func (r Record) csvRow() []string {
	seq := ""
	if r.Sequence != nil {
		seq = strconv.Itoa(*r.Sequence)
	}
	return []string{
		r.Start.Format(TimestampLayout),
		r.End.Format(TimestampLayout),
		strconv.FormatFloat(r.Seconds, 'f', 1, 64),
		r.Label,
		seq,
	}
}

// roundCoarse rounds a timestamp to the nearest Resolution increment.
func roundCoarse(t time.Time) time.Time {
	return t.Round(Resolution)
}

// coarseSeconds converts a duration between two coarse timestamps into
// seconds, snapped to one decimal place to absorb float noise.
func coarseSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*10) / 10
}
