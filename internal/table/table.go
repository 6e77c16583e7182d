// Package table defines the in-memory columnar dataset model shared by the
// decoding, profiling, and plotting layers. Tables are immutable once built:
// every downstream operation is a pure read.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a column's inferred cell type.
type Kind int

const (
	// KindText is the fallback for columns with at least one non-numeric cell.
	KindText Kind = iota
	// KindNumeric marks columns where every non-null cell parses as a number.
	KindNumeric
)

// String returns the kind name used in user-facing summaries.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	default:
		return "text"
	}
}

// Column holds one named column of raw cells plus, for numeric columns, the
// parsed float values. A cell is null when its raw value is empty or one of
// the conventional missing markers (NA, NaN, null).
type Column struct {
	Name string
	Kind Kind

	raw   []string
	nums  []float64
	valid []bool
}

// Len returns the number of cells (row count of the owning table).
func (c *Column) Len() int { return len(c.raw) }

// Raw returns the original cell text at row i.
func (c *Column) Raw(i int) string { return c.raw[i] }

// IsNull reports whether the cell at row i is missing.
func (c *Column) IsNull(i int) bool { return isNull(c.raw[i]) }

// Float returns the parsed numeric value at row i. ok is false for null
// cells, unparseable cells, and every cell of a text column.
func (c *Column) Float(i int) (v float64, ok bool) {
	if c.Kind != KindNumeric || !c.valid[i] {
		return 0, false
	}
	return c.nums[i], true
}

// Nulls counts missing cells in the column.
func (c *Column) Nulls() int {
	n := 0
	for i := range c.raw {
		if isNull(c.raw[i]) {
			n++
		}
	}
	return n
}

// Table is an ordered set of equally sized columns. Rows have no identity
// beyond their positional index.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New builds a Table from a header and row-major records, inferring each
// column's kind. Short records are padded with empty cells; long records are
// an error. Column names must be unique (case-sensitive, as in the source
// file).
func New(names []string, records [][]string) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("table has no columns")
	}
	index := make(map[string]int, len(names))
	cols := make([]*Column, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		index[name] = i
		cols[i] = &Column{Name: name, raw: make([]string, len(records))}
	}
	for r, rec := range records {
		if len(rec) > len(names) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", r+1, len(rec), len(names))
		}
		for c := range rec {
			cols[c].raw[r] = strings.TrimSpace(rec[c])
		}
	}
	for _, col := range cols {
		col.infer()
	}
	return &Table{cols: cols, index: index, rows: len(records)}, nil
}

// RowCount returns the shared row count of all columns.
func (t *Table) RowCount() int { return t.rows }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by exact name.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name, Available: t.ColumnNames()}
	}
	return t.cols[i], nil
}

// Row returns the raw cells of row i in column order.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.cols))
	for c, col := range t.cols {
		row[c] = col.raw[i]
	}
	return row
}

// HasColumn reports whether name exists in the table.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// infer decides the column kind: numeric when at least one non-null cell
// parses as a number and none fails to, text otherwise.
func (c *Column) infer() {
	numeric := 0
	for _, v := range c.raw {
		if isNull(v) {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			c.Kind = KindText
			return
		}
		numeric++
	}
	if numeric == 0 {
		c.Kind = KindText
		return
	}
	c.Kind = KindNumeric
	c.nums = make([]float64, len(c.raw))
	c.valid = make([]bool, len(c.raw))
	for i, v := range c.raw {
		if isNull(v) {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue // malformed numeric cells count as null
		}
		c.nums[i] = f
		c.valid[i] = true
	}
}

func isNull(v string) bool {
	switch strings.ToLower(v) {
	case "", "na", "nan", "null":
		return true
	}
	return false
}
