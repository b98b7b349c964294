package boxtable

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, rows Table) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
