package boxtable

import (
	"bufio"
	"io"
	"iter"
)

// WriteIter collects lines from an iterator and runs [Write] over them.
// The table needs every row for layout, so nothing is written until the
// iterator is exhausted.
func WriteIter(w io.Writer, cfg Config, seq iter.Seq[string]) error {
	var lines []string
	seq(func(line string) bool {
		lines = append(lines, line)
		return true
	})
	return Write(w, cfg, lines)
}

// ReadLines reads r to the end and returns its lines without line endings.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, trimNewline(line))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
