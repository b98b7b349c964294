package boxtable

import (
	"fmt"
	"io"
	"strings"
)

// Format selects how reverse mode writes extracted rows.
type Format string

const (
	Delimited Format = "delimited"
	CSV       Format = "csv"
	TSV       Format = "tsv"
	JSON      Format = "json"
	JSONL     Format = "jsonl"
	YAML      Format = "yaml"
	Markdown  Format = "markdown"
	HTML      Format = "html"
)

var formats = []Format{Delimited, CSV, TSV, JSON, JSONL, YAML, Markdown, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// WriteRows writes rows to w in format f. Delimited output joins each row's
// cells with delim; the empty format means Delimited.
func WriteRows(w io.Writer, f Format, rows Table, delim rune) error {
	switch f {
	case Delimited, "":
		return writeDelimited(w, rows, string(delim))
	case CSV:
		return writeCSV(w, rows)
	case TSV:
		return writeTSV(w, rows)
	case JSON:
		return writeJSON(w, rows)
	case JSONL:
		return writeJSONL(w, rows)
	case YAML:
		return writeYAML(w, rows)
	case Markdown:
		return writeMarkdown(w, rows)
	case HTML:
		return writeHTML(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writeDelimited(w io.Writer, rows Table, sep string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, sep)); err != nil {
			return err
		}
	}
	return nil
}
