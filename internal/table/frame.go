package table

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const htmlClass = "dataframe"

// Frame is a labelled table with an optional key column.
type Frame struct {
	columns []string
	rows    [][]string
	index   int
}

// NewFrame labels rows with columns. Every row must have exactly len(columns) cells.
func NewFrame(rows [][]string, columns ...string) (*Frame, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrColumnMismatch, i, len(row), len(columns))
		}
	}
	return &Frame{columns: columns, rows: rows, index: -1}, nil
}

// SetIndex makes the named column the row key. It is rendered first.
func (f *Frame) SetIndex(name string) error {
	for i, c := range f.columns {
		if c == name {
			f.index = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownColumn, name)
}

// Columns returns column labels in render order.
func (f *Frame) Columns() []string {
	return f.order(f.columns)
}

// Rows returns cells in render order.
func (f *Frame) Rows() [][]string {
	out := make([][]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = f.order(row)
	}
	return out
}

// Lookup returns the row whose key equals key.
func (f *Frame) Lookup(key string) ([]string, bool) {
	if f.index < 0 {
		return nil, false
	}
	for _, row := range f.rows {
		if row[f.index] == key {
			return f.order(row), true
		}
	}
	return nil, false
}

func (f *Frame) RenderHTML() string {
	w := f.writer(table.StyleDefault)
	w.Style().HTML.CSSClass = htmlClass
	return w.RenderHTML()
}

func (f *Frame) Render() string {
	return f.writer(table.StyleRounded).Render()
}

// writer keeps header labels verbatim; go-pretty upper-cases them by default.
func (f *Frame) writer(style table.Style) table.Writer {
	w := table.NewWriter()
	w.SetStyle(style)
	w.Style().Format.Header = text.FormatDefault
	w.AppendHeader(toRow(f.Columns()))
	for _, row := range f.Rows() {
		w.AppendRow(toRow(row))
	}
	return w
}

func (f *Frame) order(cells []string) []string {
	if f.index <= 0 {
		out := make([]string, len(cells))
		copy(out, cells)
		return out
	}
	out := make([]string, 0, len(cells))
	out = append(out, cells[f.index])
	for i, c := range cells {
		if i != f.index {
			out = append(out, c)
		}
	}
	return out
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
