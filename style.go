package boxtable

import "fmt"

// Style selects one of the fixed border glyph sets.
type Style int

const (
	StyleText     Style = iota // +-+|, thick lines drawn with =
	StyleGraphics              // ┌─┬┐│, thick lines drawn with ═
)

// Line is the glyph template for one full-width border line.
type Line struct {
	Left, Mid, Right, Fill string
}

// Glyphs is the complete glyph set of a style.
type Glyphs struct {
	Vertical    string
	Top         Line
	MiddleThin  Line
	MiddleThick Line
	BottomThin  Line
	BottomThick Line
}

var styleKeys = map[Style]string{
	StyleText:     "t",
	StyleGraphics: "g",
}

var glyphSets = map[Style]Glyphs{
	StyleText: {
		Vertical:    "|",
		Top:         Line{Left: "+", Mid: "+", Right: "+", Fill: "-"},
		MiddleThin:  Line{Left: "+", Mid: "+", Right: "+", Fill: "-"},
		MiddleThick: Line{Left: "+", Mid: "+", Right: "+", Fill: "="},
		BottomThin:  Line{Left: "+", Mid: "+", Right: "+", Fill: "-"},
		BottomThick: Line{Left: "+", Mid: "+", Right: "+", Fill: "="},
	},
	StyleGraphics: {
		Vertical:    "│",
		Top:         Line{Left: "┌", Mid: "┬", Right: "┐", Fill: "─"},
		MiddleThin:  Line{Left: "├", Mid: "┼", Right: "┤", Fill: "─"},
		MiddleThick: Line{Left: "╞", Mid: "╪", Right: "╡", Fill: "═"},
		BottomThin:  Line{Left: "└", Mid: "┴", Right: "┘", Fill: "─"},
		BottomThick: Line{Left: "╘", Mid: "╧", Right: "╛", Fill: "═"},
	},
}

// styleOrder is the detection priority used by [DetectStyle].
var styleOrder = []Style{StyleText, StyleGraphics}

// String returns the one-character style key.
func (s Style) String() string {
	if k, ok := styleKeys[s]; ok {
		return k
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Glyphs returns the glyph set for s. Unknown styles fall back to
// [StyleText]; use [ParseStyle] to reject them.
func (s Style) Glyphs() Glyphs {
	if g, ok := glyphSets[s]; ok {
		return g
	}
	return glyphSets[StyleText]
}

// Styles returns all styles in detection priority order.
func Styles() []Style {
	out := make([]Style, len(styleOrder))
	copy(out, styleOrder)
	return out
}

// ParseStyle parses a style key ("t" or "g").
func ParseStyle(key string) (Style, error) {
	for _, s := range styleOrder {
		if styleKeys[s] == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (choose from 't', 'g')", ErrUnknownStyle, key)
}
