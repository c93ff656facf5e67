// Package frame holds a table of named columns read from CSV and applies the
// outlier capper to its numeric columns.
//
// A column is numeric when every non-missing cell parses as a float. Missing
// cells (empty, NA, NaN, null) are stored as NaN and must be imputed before
// capping. Text columns are carried through unchanged so a table can be read,
// capped and written back without losing data.
package frame

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrUnknownColumn is returned when a requested column does not exist or
	// is not numeric.
	ErrUnknownColumn = errors.New("frame: unknown numeric column")
	// ErrNoDefinedValues is returned when a column has nothing to impute from.
	ErrNoDefinedValues = errors.New("frame: column has no defined values")
)

// Column is a numeric column. Missing entries are NaN.
type Column struct {
	Name   string
	Values []float64
}

// Missing returns the number of NaN entries.
func (c *Column) Missing() int {
	n := 0
	for _, v := range c.Values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// TextColumn is a column kept verbatim.
type TextColumn struct {
	Name   string
	Values []string
}

// Frame is a set of equally long columns in header order.
type Frame struct {
	header  []string
	Columns []Column
	Text    []TextColumn
	rows    int
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Header returns the column names in their original order.
func (f *Frame) Header() []string {
	return append([]string(nil), f.header...)
}

// Names returns the numeric column names in header order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.Columns))
	for i := range f.Columns {
		names[i] = f.Columns[i].Name
	}
	return names
}

// Column returns the numeric column called name.
func (f *Frame) Column(name string) (*Column, bool) {
	for i := range f.Columns {
		if f.Columns[i].Name == name {
			return &f.Columns[i], true
		}
	}
	return nil, false
}

// FillMean replaces missing entries of c with the mean of its defined values.
func FillMean(c *Column) error {
	defined := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}
	if len(defined) == 0 {
		return fmt.Errorf("%w: %s", ErrNoDefinedValues, c.Name)
	}
	FillValue(c, stat.Mean(defined, nil))
	return nil
}

// FillValue replaces missing entries of c with v.
func FillValue(c *Column, v float64) {
	for i, x := range c.Values {
		if math.IsNaN(x) {
			c.Values[i] = v
		}
	}
}
