package boxtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparatorAfter(t *testing.T) {
	t.Parallel()
	g := StyleGraphics.Glyphs()
	tests := map[string]struct {
		r, n     int
		interval Interval
		want     Line
	}{
		"middle thin":              {r: 1, n: 5, interval: 3, want: g.MiddleThin},
		"middle thick":             {r: 3, n: 5, interval: 3, want: g.MiddleThick},
		"bottom thin":              {r: 5, n: 5, interval: 3, want: g.BottomThin},
		"bottom thick":             {r: 6, n: 6, interval: 3, want: g.BottomThick},
		"zero interval middle":     {r: 3, n: 5, interval: 0, want: g.MiddleThin},
		"zero interval bottom":     {r: 5, n: 5, interval: 0, want: g.BottomThin},
		"every row thick":          {r: 2, n: 5, interval: 1, want: g.MiddleThick},
		"single row every row":     {r: 1, n: 1, interval: 1, want: g.BottomThick},
		"interval above row count": {r: 2, n: 2, interval: 9, want: g.BottomThin},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, separatorAfter(tt.r, tt.n, tt.interval, g))
		})
	}
}

func TestComputeWidths(t *testing.T) {
	t.Parallel()
	widths := computeWidths(Table{{"a", "bbbbb", "c"}, {"1", "2", "3"}})
	assert.Equal(t, []int{1, 5, 1}, widths)
}

func TestComputeWidthsRagged(t *testing.T) {
	t.Parallel()
	widths := computeWidths(Table{{"aa"}, {"b", "ccc"}})
	assert.Equal(t, []int{2, 3}, widths)
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", padCell("ab", 5))
	assert.Equal(t, "abc", padCell("abc", 2))
	assert.Equal(t, "日本 ", padCell("日本", 5))
	assert.Equal(t, "", padCell("", 0))
}

func TestDrawHLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "┌───┬───────┬───┐", drawHLine([]int{1, 5, 1}, StyleGraphics.Glyphs().Top))
	assert.Equal(t, "+==+", drawHLine([]int{0}, StyleText.Glyphs().MiddleThick))
}

func TestDrawBorderedRowPadsMissingCells(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "| a |    |", drawBorderedRow(Row{"a"}, []int{1, 2}, "|"))
}

func TestIsContentLine(t *testing.T) {
	t.Parallel()
	assert.True(t, isContentLine("│ a │", "│"))
	assert.True(t, isContentLine("││", "│"))
	assert.True(t, isContentLine("│", "│"))
	assert.False(t, isContentLine("├───┤", "│"))
	assert.False(t, isContentLine("", "|"))
}

func TestWidthCondIgnoresLocale(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, widthCond.StringWidth("α"))
	assert.Equal(t, 1, widthCond.StringWidth("→"))
	assert.Equal(t, 2, widthCond.StringWidth("中"))
	assert.Equal(t, []int{2, 1}, computeWidths(Table{{"±°", "Ж"}}))
}

func TestTrimNewline(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a", trimNewline("a\n"))
	assert.Equal(t, "a", trimNewline("a\r\n"))
	assert.Equal(t, "a ", trimNewline("a "))
	assert.Equal(t, "a\n", trimNewline("a\n\n"))
}
