package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/cwbudde/algo-outlier/internal/cli/config"
)

// report is a rendered result: a header, string rows for text and CSV, and
// structured records for JSON.
type report struct {
	header  []string
	rows    [][]string
	records any
}

func render(w io.Writer, format string, r report) error {
	switch format {
	case config.OutputJSON:
		return renderJSON(w, r.records)
	case config.OutputCSV:
		return renderCSV(w, r)
	default:
		return renderTable(w, r)
	}
}

func renderTable(w io.Writer, r report) error {
	if len(r.rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 columns)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(r.header))
	for i, h := range r.header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range r.rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}

	t.Render()
	return nil
}

func renderJSON(w io.Writer, records any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func renderCSV(w io.Writer, r report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.header); err != nil {
		return err
	}
	if err := cw.WriteAll(r.rows); err != nil {
		return err
	}
	return cw.Error()
}
