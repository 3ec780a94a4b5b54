package perfsplit

import (
	"errors"
	"fmt"

	"github.com/etnz/perfsplit/date"
)

// Table is an ordered record set: a header naming the columns and the data
// rows. Rows hold every field as its external string representation, so
// filtering and rewriting a table never alters a field.
//
// Tables are treated as immutable once loaded: operations return new Tables
// referencing the original rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// ErrBadRecordDate reports a row whose date field cannot be parsed. Tables
// are expected to be cleaned on load (see ReadTable), so a row still failing
// to parse aborts the run rather than being skipped.
var ErrBadRecordDate = errors.New("unparseable record date")

// Column returns the index of the named column.
func (t Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("table has no column %q", name)
}

// Filter returns the rows whose date in the named column falls within r,
// boundaries included. Row order and all other fields are preserved
// unchanged; the receiver is not modified.
func (t Table) Filter(dateColumn string, r date.Range) (Table, error) {
	col, err := t.Column(dateColumn)
	if err != nil {
		return Table{}, err
	}
	filtered := Table{Header: t.Header}
	for i, row := range t.Rows {
		on, err := date.ParseUS(row[col])
		if err != nil {
			return Table{}, fmt.Errorf("row %d: %w: %v", i+1, ErrBadRecordDate, err)
		}
		if r.Contains(on) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered, nil
}
