package boxtable

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders rows as a GitHub-flavored Markdown table. The first
// row becomes the header.
func writeMarkdown(w io.Writer, rows Table) error {
	if len(rows) == 0 {
		return nil
	}
	rows = Normalize(rows)

	// Calculate column widths (minimum 3 for the separator row).
	widths := computeWidths(rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, rows[0], widths); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells Row, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = padCell(cellAt(cells, i), width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
