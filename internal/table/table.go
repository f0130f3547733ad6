package table

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported table format")
	ErrLengthMismatch    = errors.New("column length mismatch")
	ErrDuplicateColumn   = errors.New("duplicate column")
)

// Column is one named series of a table.
type Column struct {
	Name   string
	Values []float64
}

// Table is an ordered set of equally long columns.
type Table struct {
	Columns []Column
}

// New builds a table from cols, checking names and lengths.
func New(cols ...Column) (*Table, error) {
	t := &Table{}
	for _, c := range cols {
		if err := t.Append(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Append adds c as the last column.
func (t *Table) Append(c Column) error {
	if _, ok := t.Column(c.Name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
	}
	if len(t.Columns) > 0 && len(c.Values) != t.Len() {
		return fmt.Errorf("%w: column %q has %d rows, table has %d", ErrLengthMismatch, c.Name, len(c.Values), t.Len())
	}
	t.Columns = append(t.Columns, c)
	return nil
}

// Column looks a column up by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Value returns the series stored under name, or nil.
func (t *Table) Value(name string) any {
	c, ok := t.Column(name)
	if !ok {
		return nil
	}
	return c.Values
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Columns)
}

// row returns the i-th row across all columns.
func (t *Table) row(i int) []float64 {
	out := make([]float64, len(t.Columns))
	for j, c := range t.Columns {
		out[j] = c.Values[i]
	}
	return out
}
