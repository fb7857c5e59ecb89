package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"shop-audit/core/utils"
)

// ErrNoHeader is returned for an input without a header row.
var ErrNoHeader = errors.New("missing header row")

// Table is a fully materialized input with a header row.
type Table struct {
	Header []string
	rows   []Row
	index  map[string]int
}

// Row is one data row. Line is its 1-based line number in the source.
type Row struct {
	Line  int
	cells []string
}

// Get returns the cell at column col, or "" when the row is short or col < 0.
func (r Row) Get(col int) string {
	if col < 0 || col >= len(r.cells) {
		return ""
	}
	return r.cells[col]
}

// Read parses CSV input. Leading spaces in cells are dropped; rows may have
// fewer or more cells than the header.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	t := NewTable(header)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		t.rows = append(t.rows, Row{Line: line, cells: record})
	}

	return t, nil
}

// NewTable creates an empty table with the given header.
func NewTable(header []string) *Table {
	t := &Table{
		Header: header,
		index:  make(map[string]int, len(header)),
	}
	for i, h := range header {
		key := utils.HeaderKey(h)
		if _, exists := t.index[key]; !exists {
			t.index[key] = i
		}
	}
	return t
}

// Append adds a data row. Used to build tables in memory.
func (t *Table) Append(cells ...string) {
	t.rows = append(t.rows, Row{Line: len(t.rows) + 2, cells: cells})
}

// Rows returns the data rows in source order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Column returns the position of the first header matching any of names.
func (t *Table) Column(names ...string) (int, bool) {
	for _, name := range names {
		if i, ok := t.index[utils.HeaderKey(name)]; ok {
			return i, true
		}
	}
	return -1, false
}
