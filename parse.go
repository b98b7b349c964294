package boxtable

import (
	"fmt"
	"strings"
)

// ParseRows splits each line on delim and trims every cell. Blank lines are
// skipped wherever they appear.
func ParseRows(lines []string, delim rune) (Table, error) {
	sep := string(delim)
	var rows Table
	for _, line := range lines {
		line = trimNewline(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitCells(line, sep))
	}
	if len(rows) == 0 {
		return nil, ErrNoRowsFound
	}
	return rows, nil
}

// Normalize right-pads every row with empty cells to the widest row.
// The input is left untouched.
func Normalize(t Table) Table {
	n := colCount(t)
	out := make(Table, len(t))
	for i, row := range t {
		padded := make(Row, n)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

// Transpose swaps rows and columns of a rectangular table.
func Transpose(t Table) (Table, error) {
	if len(t) == 0 {
		return Table{}, nil
	}
	n := len(t[0])
	for i, row := range t {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, i+1, len(row), n)
		}
	}
	out := make(Table, n)
	for j := range n {
		col := make(Row, len(t))
		for i, row := range t {
			col[i] = row[j]
		}
		out[j] = col
	}
	return out, nil
}

func colCount(t Table) int {
	n := 0
	for _, row := range t {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func splitCells(s, sep string) Row {
	parts := strings.Split(s, sep)
	row := make(Row, len(parts))
	for i, p := range parts {
		row[i] = strings.TrimSpace(p)
	}
	return row
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
