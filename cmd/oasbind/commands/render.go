package commands

import (
	"fmt"
	"io"
)

// RenderSummaryTable renders a table of results.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with headers is rendered.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		writeRow(w, headers, widths)
	}
	for _, row := range rows {
		if quiet {
			for i, cell := range row {
				if i > 0 {
					_, _ = fmt.Fprint(w, "\t")
				}
				_, _ = fmt.Fprint(w, cell)
			}
			_, _ = fmt.Fprintln(w)
			continue
		}
		writeRow(w, row, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			_, _ = fmt.Fprint(w, "  ")
		}
		// The last column is not padded.
		if i == len(cells)-1 {
			_, _ = fmt.Fprint(w, cell)
			continue
		}
		_, _ = fmt.Fprintf(w, "%-*s", widths[i], cell)
	}
	_, _ = fmt.Fprintln(w)
}

// RenderDetail renders a value as JSON or YAML.
func RenderDetail(w io.Writer, v any, format string) error {
	data, err := MarshalDocument(v, format)
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	if _, err := fmt.Fprintln(w, trimNewline(data)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
