package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummaries() []LabelSummary {
	return []LabelSummary{
		{Label: "save screen", Count: 2, TotalSeconds: 2.0, MinSeconds: 0.5, MaxSeconds: 1.5, MeanSeconds: 1.0},
		{Label: "load data", Count: 1, TotalSeconds: 0.8, MinSeconds: 0.8, MaxSeconds: 0.8, MeanSeconds: 0.8},
	}
}

func TestFormatText(t *testing.T) {
	output, err := Format(sampleSummaries(), "text")
	require.NoError(t, err)

	assert.Contains(t, output, "save screen")
	assert.Contains(t, output, "load data")
	assert.Contains(t, output, "1.00")
	assert.Contains(t, output, "0.8")
}

func TestFormatJSON(t *testing.T) {
	output, err := Format(sampleSummaries(), "json")
	require.NoError(t, err)

	var result struct {
		Labels []LabelSummary `json:"labels"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Len(t, result.Labels, 2)
	assert.Equal(t, "save screen", result.Labels[0].Label)
	assert.Equal(t, 2, result.Labels[0].Count)
}

func TestFormatCSV(t *testing.T) {
	output, err := Format(sampleSummaries(), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "label,count,total_seconds,min_seconds,max_seconds,mean_seconds", lines[0])
	assert.Equal(t, "save screen,2,2.0,0.5,1.5,1.00", lines[1])
}

func TestFormatDefaultsToText(t *testing.T) {
	output, err := Format(sampleSummaries(), "")
	require.NoError(t, err)
	assert.Contains(t, output, "save screen")
}

func TestFormatUnsupported(t *testing.T) {
	_, err := Format(sampleSummaries(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
