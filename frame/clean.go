package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// DropDuplicates removes every row that repeats an earlier row across all
// columns, numeric and text, and returns the number of rows removed. The
// first occurrence is kept and the remaining rows stay in order. Missing
// numeric cells compare equal to each other.
func DropDuplicates(f *Frame) int {
	if f.rows < 2 {
		return 0
	}

	seen := make(map[string]struct{}, f.rows)
	keep := make([]bool, f.rows)
	var key strings.Builder
	for i := range f.rows {
		key.Reset()
		for j := range f.Columns {
			key.WriteString(FormatValue(f.Columns[j].Values[i]))
			key.WriteByte(0)
		}
		for j := range f.Text {
			key.WriteString(strconv.Quote(f.Text[j].Values[i]))
			key.WriteByte(0)
		}
		k := key.String()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keep[i] = true
	}

	rows := len(seen)
	if rows == f.rows {
		return 0
	}
	for j := range f.Columns {
		f.Columns[j].Values = compact(f.Columns[j].Values, keep)
	}
	for j := range f.Text {
		f.Text[j].Values = compact(f.Text[j].Values, keep)
	}
	removed := f.rows - rows
	f.rows = rows
	return removed
}

func compact[T any](values []T, keep []bool) []T {
	out := values[:0]
	for i, v := range values {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}

// Missing returns the number of missing cells (empty, NA, NaN, null, none).
func (c *TextColumn) Missing() int {
	n := 0
	for _, v := range c.Values {
		if isMissing(v) {
			n++
		}
	}
	return n
}

// FillMode replaces missing cells of c with its most frequent defined value.
// Ties go to the lexicographically smallest value.
func FillMode(c *TextColumn) error {
	counts := make(map[string]int)
	for _, v := range c.Values {
		if !isMissing(v) {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return fmt.Errorf("%w: %s", ErrNoDefinedValues, c.Name)
	}

	var mode string
	best := 0
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	for i, v := range c.Values {
		if isMissing(v) {
			c.Values[i] = mode
		}
	}
	return nil
}

// TextColumn returns the text column called name.
func (f *Frame) TextColumn(name string) (*TextColumn, bool) {
	for i := range f.Text {
		if f.Text[i].Name == name {
			return &f.Text[i], true
		}
	}
	return nil, false
}
