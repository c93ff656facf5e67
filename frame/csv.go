package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// isMissing reports whether a cell counts as a missing value.
func isMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "nan", "null", "none":
		return true
	}
	return false
}

// ReadCSV parses a CSV table with a header row.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("frame: missing CSV header")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	seen := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, fmt.Errorf("frame: empty column name at position %d", i)
		}
		if seen[h] {
			return nil, fmt.Errorf("frame: duplicate column %q", h)
		}
		seen[h] = true
		header[i] = h
	}

	cells := make([][]string, len(header))
	rows := 0
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", rows+1, err)
		}
		for j := range header {
			cells[j] = append(cells[j], rec[j])
		}
		rows++
	}

	f := &Frame{header: header, rows: rows}
	for j, name := range header {
		if values, ok := parseNumeric(cells[j]); ok {
			f.Columns = append(f.Columns, Column{Name: name, Values: values})
			continue
		}
		f.Text = append(f.Text, TextColumn{Name: name, Values: cells[j]})
	}
	return f, nil
}

func parseNumeric(cells []string) ([]float64, bool) {
	values := make([]float64, len(cells))
	for i, cell := range cells {
		if isMissing(cell) {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// WriteCSV writes f in header order. Missing numeric values are written as
// empty cells.
func WriteCSV(w io.Writer, f *Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	cols := make([]func(int) string, len(f.header))
	for j, name := range f.header {
		if c, ok := f.Column(name); ok {
			values := c.Values
			cols[j] = func(i int) string { return FormatValue(values[i]) }
			continue
		}
		t, ok := f.TextColumn(name)
		if !ok {
			return fmt.Errorf("frame: column %q has no data", name)
		}
		values := t.Values
		cols[j] = func(i int) string { return values[i] }
	}

	rec := make([]string, len(cols))
	for i := 0; i < f.rows; i++ {
		for j, get := range cols {
			rec[j] = get(i)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatValue renders v in the shortest exact form, or "" for NaN.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
