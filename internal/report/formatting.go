package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Format renders summaries in the specified format (text, json, or csv).
func Format(summaries []LabelSummary, format string) (string, error) {
	switch format {
	case "json":
		return formatJSON(summaries)
	case "csv":
		return formatCSV(summaries)
	case "", "text":
		return formatText(summaries), nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", format)
	}
}

func formatJSON(summaries []LabelSummary) (string, error) {
	result := struct {
		Labels []LabelSummary `json:"labels"`
	}{Labels: summaries}

	bts, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bts) + "\n", nil
}

func formatCSV(summaries []LabelSummary) (string, error) {
	var output strings.Builder
	writer := csv.NewWriter(&output)

	rows := [][]string{
		{"label", "count", "total_seconds", "min_seconds", "max_seconds", "mean_seconds"},
	}
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Label,
			strconv.Itoa(s.Count),
			strconv.FormatFloat(s.TotalSeconds, 'f', 1, 64),
			strconv.FormatFloat(s.MinSeconds, 'f', 1, 64),
			strconv.FormatFloat(s.MaxSeconds, 'f', 1, 64),
			fmt.Sprintf("%.2f", s.MeanSeconds),
		})
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return output.String(), writer.Error()
}

func formatText(summaries []LabelSummary) string {
	var output strings.Builder
	table := tablewriter.NewWriter(&output)
	table.Header("Label", "Count", "Total (s)", "Min (s)", "Max (s)", "Mean (s)")

	for _, s := range summaries {
		table.Append(
			s.Label,
			strconv.Itoa(s.Count),
			strconv.FormatFloat(s.TotalSeconds, 'f', 1, 64),
			strconv.FormatFloat(s.MinSeconds, 'f', 1, 64),
			strconv.FormatFloat(s.MaxSeconds, 'f', 1, 64),
			fmt.Sprintf("%.2f", s.MeanSeconds),
		)
	}

	table.Render()
	return output.String()
}
