package perfsplit

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// this file handles reading and writing the tabular perf files.
// The external format is plain CSV with a single header row; large exports
// are known to be messy (hidden whitespace around dates, header rows repeated
// in the middle of the data), so reading cleans the table before it reaches
// the filtering logic.

// ReadTable reads the CSV file at path into a Table and cleans it:
//   - fields of the date column are stripped of surrounding whitespace,
//   - rows repeating the header (the date cell equals the column name) are dropped,
//   - rows with fewer fields than the header are dropped.
func ReadTable(path, dateColumn string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("cannot open table %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // width is checked against the header below

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("cannot read table %q: %w", path, err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("table %q is empty: missing header row", path)
	}

	t := Table{Header: records[0]}
	col, err := t.Column(dateColumn)
	if err != nil {
		return Table{}, fmt.Errorf("table %q: %w", path, err)
	}
	for _, row := range records[1:] {
		if len(row) < len(t.Header) {
			continue
		}
		row[col] = strings.TrimSpace(row[col])
		if row[col] == dateColumn {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteTable writes the table as CSV to path, header first, no index column.
func WriteTable(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create table %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("cannot write table %q: %w", path, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("cannot write table %q: %w", path, err)
	}
	w.Flush()
	return w.Error()
}
