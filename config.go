package boxtable

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is the number of rows between thick separators.
type Interval int

// NoBorders renders the table without any border lines.
const NoBorders Interval = -1

// noBordersToken is the option value that selects [NoBorders].
const noBordersToken = "x"

var delimiters = []rune{' ', '-', '/', '|', ','}

// String returns the option form of the interval.
func (i Interval) String() string {
	if i == NoBorders {
		return noBordersToken
	}
	return strconv.Itoa(int(i))
}

// ParseInterval parses a non-negative integer or "x" for no borders.
func ParseInterval(s string) (Interval, error) {
	if s == noBordersToken {
		return NoBorders, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: interval %q must be a non-negative integer or %q", ErrInvalidConfig, s, noBordersToken)
	}
	return Interval(n), nil
}

// Delimiters returns the accepted cell delimiters.
func Delimiters() []rune {
	out := make([]rune, len(delimiters))
	copy(out, delimiters)
	return out
}

// ParseDelimiter parses a single-character delimiter from the accepted set.
func ParseDelimiter(s string) (rune, error) {
	for _, d := range delimiters {
		if s == string(d) {
			return d, nil
		}
	}
	choices := make([]string, len(delimiters))
	for i, d := range delimiters {
		choices[i] = strconv.QuoteRune(d)
	}
	return 0, fmt.Errorf("%w: invalid choice: %q (choose from %s)", ErrInvalidConfig, s, strings.Join(choices, ", "))
}
