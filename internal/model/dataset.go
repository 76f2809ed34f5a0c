package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Structural dataset errors.
var (
	ErrMissingColumn   = errors.New("missing required column")
	ErrRowShape        = errors.New("row length does not match column count")
	ErrDuplicateColumn = errors.New("duplicate column name")
)

// Dataset is an in-memory table of named columns. Row order is significant
// and preserved by every transform.
type Dataset struct {
	index   map[string]int
	columns []string
	rows    [][]Value
}

// NewDataset creates an empty dataset with the given columns.
func NewDataset(columns ...string) (*Dataset, error) {
	d := &Dataset{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, name := range columns {
		if _, exists := d.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		d.index[name] = len(d.columns)
		d.columns = append(d.columns, name)
	}
	return d, nil
}

// MustDataset is NewDataset for fixed column lists; it panics on duplicates.
func MustDataset(columns ...string) *Dataset {
	d, err := NewDataset(columns...)
	if err != nil {
		panic(err)
	}
	return d
}

// Columns returns a copy of the column names in order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Require returns ErrMissingColumn naming every absent column.
func (d *Dataset) Require(columns ...string) error {
	var missing []string
	for _, name := range columns {
		if !d.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// AppendRow adds a row. The row is copied.
func (d *Dataset) AppendRow(values ...Value) error {
	if len(values) != len(d.columns) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrRowShape, len(values), len(d.columns))
	}
	row := make([]Value, len(values))
	copy(row, values)
	d.rows = append(d.rows, row)
	return nil
}

// AppendRecord adds a row from a column→value map. Columns not present in the
// map are missing; keys that are not columns are an error.
func (d *Dataset) AppendRecord(record map[string]Value) error {
	row := make([]Value, len(d.columns))
	for name, v := range record {
		i, ok := d.index[name]
		if !ok {
			return fmt.Errorf("%w: %q is not a column", ErrRowShape, name)
		}
		row[i] = v
	}
	d.rows = append(d.rows, row)
	return nil
}

// At returns the cell at row i, column j.
func (d *Dataset) At(i, j int) Value {
	return d.rows[i][j]
}

// Set overwrites the cell at row i, column j.
func (d *Dataset) Set(i, j int, v Value) {
	d.rows[i][j] = v
}

// Get returns the cell at row i in the named column, or Missing when the
// column does not exist.
func (d *Dataset) Get(i int, column string) Value {
	j, ok := d.index[column]
	if !ok {
		return Missing()
	}
	return d.rows[i][j]
}

// Row returns a read-only view of row i.
func (d *Dataset) Row(i int) Row {
	return Row{ds: d, i: i}
}

// Column returns a copy of the named column's cells.
func (d *Dataset) Column(name string) ([]Value, error) {
	j, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	out := make([]Value, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[j]
	}
	return out, nil
}

// Clone returns a deep copy that shares no storage with d.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		columns: d.Columns(),
		index:   make(map[string]int, len(d.index)),
		rows:    make([][]Value, len(d.rows)),
	}
	for name, i := range d.index {
		out.index[name] = i
	}
	for i, row := range d.rows {
		out.rows[i] = make([]Value, len(row))
		copy(out.rows[i], row)
	}
	return out
}

// WithColumn returns a new dataset with the column appended, or replaced in
// place when a column of that name already exists. d is not modified.
func (d *Dataset) WithColumn(name string, values []Value) (*Dataset, error) {
	if len(values) != len(d.rows) {
		return nil, fmt.Errorf("%w: column %q has %d values for %d rows", ErrRowShape, name, len(values), len(d.rows))
	}
	out := d.Clone()
	if j, ok := out.index[name]; ok {
		for i := range out.rows {
			out.rows[i][j] = values[i]
		}
		return out, nil
	}
	out.index[name] = len(out.columns)
	out.columns = append(out.columns, name)
	for i := range out.rows {
		out.rows[i] = append(out.rows[i], values[i])
	}
	return out, nil
}

// Select returns a new dataset holding only the given columns, in that order.
func (d *Dataset) Select(columns ...string) (*Dataset, error) {
	if err := d.Require(columns...); err != nil {
		return nil, err
	}
	out, err := NewDataset(columns...)
	if err != nil {
		return nil, err
	}
	for _, row := range d.rows {
		vals := make([]Value, len(columns))
		for k, name := range columns {
			vals[k] = row[d.index[name]]
		}
		out.rows = append(out.rows, vals)
	}
	return out, nil
}

// Filter returns a new dataset holding the rows for which keep returns true.
func (d *Dataset) Filter(keep func(Row) bool) *Dataset {
	out := &Dataset{
		columns: d.Columns(),
		index:   make(map[string]int, len(d.index)),
	}
	for name, i := range d.index {
		out.index[name] = i
	}
	for i, row := range d.rows {
		if !keep(d.Row(i)) {
			continue
		}
		cp := make([]Value, len(row))
		copy(cp, row)
		out.rows = append(out.rows, cp)
	}
	return out
}

// Row is a read-only view of one dataset row.
type Row struct {
	ds *Dataset
	i  int
}

// Index returns the row position within its dataset.
func (r Row) Index() int {
	return r.i
}

// Get returns the named cell, or Missing when the column does not exist.
func (r Row) Get(column string) Value {
	return r.ds.Get(r.i, column)
}

// Key returns a canonical key for the full row over the given column
// positions. Rows produce equal keys iff their cells are pairwise Equal;
// each cell key is length-prefixed so cell contents cannot shift boundaries.
func (r Row) Key(columns []int) string {
	var b strings.Builder
	for _, j := range columns {
		k := r.ds.rows[r.i][j].Key()
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}

// RowOf builds a single-row dataset view from a column→value map. It is a
// convenience for per-row validators used outside a full dataset pass.
func RowOf(record map[string]Value) Row {
	names := make([]string, 0, len(record))
	for name := range record {
		names = append(names, name)
	}
	d := MustDataset(names...)
	// Keys come from the map, so AppendRecord cannot fail.
	_ = d.AppendRecord(record)
	return d.Row(0)
}
