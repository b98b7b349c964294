package boxtable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// widthCond measures display widths. East Asian ambiguous characters are
// always one column wide, whatever the locale.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// RenderTable renders a rectangular table. With interval NoBorders the
// columns are separated by single spaces and no border lines are drawn.
// Otherwise a thick separator follows every interval-th row; zero
// disables thick separators. The result has no trailing newline.
//
// An unknown style is drawn with [StyleText] glyphs; [Write] rejects it
// with [ErrUnknownStyle] instead.
func RenderTable(t Table, interval Interval, style Style) string {
	widths := computeWidths(t)
	if interval == NoBorders {
		return renderPlainTable(t, widths)
	}
	return renderBorderedTable(t, widths, interval, style.Glyphs())
}

func computeWidths(t Table) []int {
	widths := make([]int, colCount(t))
	for _, row := range t {
		for i, cell := range row {
			if w := widthCond.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (NoBorders) ---

func renderPlainTable(t Table, widths []int) string {
	lines := make([]string, len(t))
	for r, row := range t {
		parts := make([]string, len(widths))
		for i, width := range widths {
			parts[i] = padCell(cellAt(row, i), width)
		}
		lines[r] = strings.TrimRight(strings.Join(parts, " "), " \t")
	}
	return strings.Join(lines, "\n")
}

// --- Bordered table ---

func renderBorderedTable(t Table, widths []int, interval Interval, g Glyphs) string {
	lines := make([]string, 0, 2*len(t)+1)
	lines = append(lines, drawHLine(widths, g.Top))
	for i, row := range t {
		lines = append(lines, drawBorderedRow(row, widths, g.Vertical))
		lines = append(lines, drawHLine(widths, separatorAfter(i+1, len(t), interval, g)))
	}
	return strings.Join(lines, "\n")
}

// separatorAfter picks the line drawn below row r (1-indexed) of n.
func separatorAfter(r, n int, interval Interval, g Glyphs) Line {
	last := r == n
	thick := interval > 0 && r%int(interval) == 0
	switch {
	case last && thick:
		return g.BottomThick
	case last:
		return g.BottomThin
	case thick:
		return g.MiddleThick
	default:
		return g.MiddleThin
	}
}

func drawHLine(widths []int, l Line) string {
	var sb strings.Builder
	sb.WriteString(l.Left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(l.Fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(l.Mid)
		}
	}
	sb.WriteString(l.Right)
	return sb.String()
}

func drawBorderedRow(cells Row, widths []int, vert string) string {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(padCell(cellAt(cells, i), width))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	return sb.String()
}

func cellAt(row Row, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// padCell left-justifies s to width display columns.
func padCell(s string, width int) string {
	pad := width - widthCond.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
