package report

import (
	"fmt"
	"reflect"
)

// Column is one named, ordered sequence of values.
type Column struct {
	Name   string
	Values []any
}

// Frame is an ordered table of named columns. Every column holds the same
// number of rows; row order is significant and preserved. A Frame is
// value-like: constructors copy the provided columns, and formatters never
// mutate a frame handed to them.
type Frame struct {
	cols []Column
}

// NewFrame builds a frame from ordered columns. All columns must have equal
// row counts; a mismatch fails with [ErrInvalidType]. A frame with zero
// columns is valid and renders as a sentinel block.
func NewFrame(cols ...Column) (*Frame, error) {
	if len(cols) > 0 {
		rows := len(cols[0].Values)
		for _, c := range cols[1:] {
			if len(c.Values) != rows {
				return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
					ErrInvalidType, c.Name, len(c.Values), rows)
			}
		}
	}
	f := &Frame{cols: make([]Column, len(cols))}
	for i, c := range cols {
		vals := make([]any, len(c.Values))
		copy(vals, c.Values)
		f.cols[i] = Column{Name: c.Name, Values: vals}
	}
	return f, nil
}

// MustFrame is like [NewFrame] but panics on invalid input. Intended for
// literals in tests and examples.
func MustFrame(cols ...Column) *Frame {
	f, err := NewFrame(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// NumRows returns the row count shared by all columns.
func (f *Frame) NumRows() int {
	if f == nil || len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0].Values)
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	if f == nil {
		return 0
	}
	return len(f.cols)
}

// Empty reports whether the frame has zero rows or zero columns.
func (f *Frame) Empty() bool {
	return f.NumRows() == 0 || f.NumCols() == 0
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns a copy of the frame's columns.
func (f *Frame) Columns() []Column {
	if f == nil {
		return nil
	}
	cols := make([]Column, len(f.cols))
	for i, c := range f.cols {
		vals := make([]any, len(c.Values))
		copy(vals, c.Values)
		cols[i] = Column{Name: c.Name, Values: vals}
	}
	return cols
}

// Column returns the values of the column whose name canonicalizes to the
// same identifier as name. The values are the originals, not rendered text.
func (f *Frame) Column(name string) ([]any, bool) {
	if f == nil {
		return nil, false
	}
	want := Canonical(name)
	for _, c := range f.cols {
		if Canonical(c.Name) == want {
			vals := make([]any, len(c.Values))
			copy(vals, c.Values)
			return vals, true
		}
	}
	return nil, false
}

// Head returns a frame holding the first n rows of every column. When n is
// at least the row count, the result equals the receiver.
func (f *Frame) Head(n int) *Frame {
	if f == nil {
		return nil
	}
	if n < 0 {
		n = 0
	}
	if n > f.NumRows() {
		n = f.NumRows()
	}
	cols := make([]Column, len(f.cols))
	for i, c := range f.cols {
		vals := make([]any, n)
		copy(vals, c.Values[:n])
		cols[i] = Column{Name: c.Name, Values: vals}
	}
	return &Frame{cols: cols}
}

// Equal reports whether two frames hold identical column names and values,
// independent of identity. Used for composition membership checks.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	return reflect.DeepEqual(f.cols, o.cols)
}

// sameColumnSet reports whether every frame shares one identical ordered
// column-name set.
func sameColumnSet(frames []*Frame) bool {
	if len(frames) < 2 {
		return true
	}
	first := frames[0].Names()
	for _, f := range frames[1:] {
		names := f.Names()
		if len(names) != len(first) {
			return false
		}
		for i := range names {
			if names[i] != first[i] {
				return false
			}
		}
	}
	return true
}
