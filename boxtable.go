package boxtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoRowsFound       = errors.New("no rows found")
	ErrNoTableRowsFound  = errors.New("no table rows found")
	ErrUnknownStyle      = errors.New("unknown style")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrInputNotFound     = errors.New("input not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNotRectangular    = errors.New("table is not rectangular")
)

// Row is an ordered sequence of trimmed cells.
type Row []string

// Table is an ordered sequence of rows.
type Table []Row

// Config controls a single run of the pipeline.
type Config struct {
	// Delimiter separates cells in the input (and in reverse-mode output).
	Delimiter rune
	// Interval places a thick separator after every Interval-th row.
	// Zero disables thick separators; NoBorders renders without borders.
	Interval Interval
	// Transpose swaps rows and columns before rendering.
	Transpose bool
	// Style selects the border glyphs. In reverse mode it is used only
	// when DetectStyle is false.
	Style Style
	// DetectStyle makes reverse mode pick the style from its input.
	DetectStyle bool
	// Reverse strips a rendered table back into rows.
	Reverse bool
	// Output selects how reverse mode writes rows. Default: Delimited.
	Output Format
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Delimiter:   '|',
		Interval:    3,
		Style:       StyleGraphics,
		DetectStyle: true,
		Output:      Delimited,
	}
}

// Write runs the pipeline over lines and writes the result to w.
// Nothing is written when an error is returned.
// An Output other than Delimited requires Reverse.
func Write(w io.Writer, cfg Config, lines []string) error {
	if !cfg.Reverse && cfg.Output != Delimited && cfg.Output != "" {
		return fmt.Errorf("%w: output %s requires reverse mode", ErrInvalidConfig, cfg.Output)
	}
	var buf bytes.Buffer
	if cfg.Reverse {
		if err := writeReverse(&buf, cfg, lines); err != nil {
			return err
		}
	} else {
		out, err := render(cfg, lines)
		if err != nil {
			return err
		}
		buf.WriteString(out)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Marshal runs the pipeline over lines and returns the bytes.
func Marshal(cfg Config, lines []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, cfg, lines); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func render(cfg Config, lines []string) (string, error) {
	if _, ok := glyphSets[cfg.Style]; !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownStyle, cfg.Style)
	}
	rows, err := ParseRows(lines, cfg.Delimiter)
	if err != nil {
		return "", err
	}
	rows = Normalize(rows)
	if cfg.Transpose {
		if rows, err = Transpose(rows); err != nil {
			return "", err
		}
	}
	return RenderTable(rows, cfg.Interval, cfg.Style), nil
}

func writeReverse(w io.Writer, cfg Config, lines []string) error {
	style := cfg.Style
	if cfg.DetectStyle {
		style = DetectStyle(lines)
	}
	rows, err := ExtractRows(lines, style)
	if err != nil {
		return err
	}
	return WriteRows(w, cfg.Output, rows, cfg.Delimiter)
}
