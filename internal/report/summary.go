// Package report aggregates measurement logs per operation label.
package report

import (
	"github.com/y24/perftimer/pkg/perftimer"
)

// LabelSummary holds aggregate statistics for one operation label.
type LabelSummary struct {
	Label        string  `json:"label"`
	Count        int     `json:"count"`
	TotalSeconds float64 `json:"total_seconds"`
	MinSeconds   float64 `json:"min_seconds"`
	MaxSeconds   float64 `json:"max_seconds"`
	MeanSeconds  float64 `json:"mean_seconds"`
}

// Summarize aggregates records per label. Labels appear in first-seen order,
// matching the insertion order of the source log.
func Summarize(records []perftimer.Record) []LabelSummary {
	index := make(map[string]int)
	summaries := make([]LabelSummary, 0)

	for _, rec := range records {
		i, seen := index[rec.Label]
		if !seen {
			i = len(summaries)
			index[rec.Label] = i
			summaries = append(summaries, LabelSummary{
				Label:      rec.Label,
				MinSeconds: rec.Seconds,
				MaxSeconds: rec.Seconds,
			})
		}

		s := &summaries[i]
		s.Count++
		s.TotalSeconds += rec.Seconds
		if rec.Seconds < s.MinSeconds {
			s.MinSeconds = rec.Seconds
		}
		if rec.Seconds > s.MaxSeconds {
			s.MaxSeconds = rec.Seconds
		}
		s.MeanSeconds = s.TotalSeconds / float64(s.Count)
	}

	return summaries
}
