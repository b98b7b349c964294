package boxtable

import (
	"fmt"
	"strings"
)

// DetectStyle returns the first style, in [Styles] order, whose vertical
// glyph both starts and ends some non-empty line. It falls back to
// [StyleText] when nothing matches.
func DetectStyle(lines []string) Style {
	for _, s := range styleOrder {
		vert := glyphSets[s].Vertical
		for _, line := range lines {
			if isContentLine(trimNewline(line), vert) {
				return s
			}
		}
	}
	return StyleText
}

// ExtractRows strips the borders of a table rendered in style and returns
// the trimmed cells of every content line. Border lines are skipped because
// they start and end with corner glyphs rather than the vertical glyph.
// A line holding a single vertical glyph yields one empty cell.
func ExtractRows(lines []string, style Style) (Table, error) {
	g, ok := glyphSets[style]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStyle, style)
	}
	vert := g.Vertical
	var rows Table
	for _, line := range lines {
		line = trimNewline(line)
		if !isContentLine(line, vert) {
			continue
		}
		var inner string
		if len(line) >= 2*len(vert) {
			inner = line[len(vert) : len(line)-len(vert)]
		}
		rows = append(rows, splitCells(inner, vert))
	}
	if len(rows) == 0 {
		return nil, ErrNoTableRowsFound
	}
	return rows, nil
}

func isContentLine(line, vert string) bool {
	return line != "" &&
		strings.HasPrefix(line, vert) &&
		strings.HasSuffix(line, vert)
}
