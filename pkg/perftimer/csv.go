package perftimer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Header is the column row written at the top of every measurement log.
var Header = []string{"start_timestamp", "end_timestamp", "duration_seconds", "label", "sequence"}

// appendRecord appends one row to the log at path, writing the header first
// when the file is new or empty. Each call is a full open/write/close cycle.
func appendRecord(path string, rec Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := w.Write(rec.csvRow()); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flushing row: %w", err)
	}
	return f.Close()
}

// WriteRecords writes a header plus one row per record to a new file at
// path, truncating anything already there.
func WriteRecords(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.csvRow()); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flushing rows: %w", err)
	}
	return f.Close()
}

// LoadRecords parses a measurement log written by this package. The header
// row is required; malformed rows produce an error naming the line.
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading %s: missing header row", path)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	start, err := time.ParseInLocation(TimestampLayout, row[0], time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("parsing start timestamp: %w", err)
	}
	end, err := time.ParseInLocation(TimestampLayout, row[1], time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("parsing end timestamp: %w", err)
	}
	seconds, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return Record{}, fmt.Errorf("parsing duration: %w", err)
	}

	rec := Record{Start: start, End: end, Seconds: seconds, Label: row[3]}
	if row[4] != "" {
		seq, err := strconv.Atoi(row[4])
		if err != nil {
			return Record{}, fmt.Errorf("parsing sequence: %w", err)
		}
		rec.Sequence = &seq
	}
	return rec, nil
}
