// Package boxtable renders delimited text as a bordered table and strips
// rendered tables back into delimited rows.
//
// The central entry points are [Write] and [Marshal], which run the whole
// pipeline for a [Config] over already-read input lines:
//
//	cfg := boxtable.DefaultConfig()
//	err := boxtable.Write(os.Stdout, cfg, lines)
//
// # Pipeline
//
// Forward mode runs four steps, each exported on its own:
//
//   - [ParseRows] splits lines on a single-character delimiter and trims cells.
//     Blank lines are dropped.
//   - [Normalize] pads short rows with empty cells so the table is rectangular.
//   - [Transpose] optionally swaps rows and columns.
//   - [RenderTable] computes column widths and draws the table.
//
// Reverse mode runs [DetectStyle] (unless a style is given), [ExtractRows],
// and [WriteRows].
//
// # Styles
//
// Two fixed styles exist: [StyleText] draws ASCII borders with +, - and |;
// [StyleGraphics] draws Unicode box-drawing lines. Use [ParseStyle] to map
// the option keys "t" and "g" to a style.
//
// # Thick separators
//
// [Config.Interval] places a thick separator (= or ═) after every n-th row.
// An interval of 0 keeps every separator thin. [NoBorders] drops borders
// entirely and separates columns with single spaces:
//
//	c1 c2
//	1  1
//
// # Reverse output
//
// Extracted rows are joined with the configured delimiter by default. Set
// [Config.Output] to [CSV], [TSV], [JSON], [JSONL], [YAML], [Markdown], or [HTML] to
// write them in another format.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoRowsFound] — the input has no non-blank line
//   - [ErrNoTableRowsFound] — reverse input has no bordered content line
//   - [ErrUnknownStyle] — style key outside "t" and "g"
//   - [ErrInvalidConfig] — bad delimiter or interval option
//   - [ErrInputNotFound] — the named input does not exist
//   - [ErrUnsupportedFormat] — unknown reverse output format
//   - [ErrNotRectangular] — [Transpose] given rows of unequal length
package boxtable
