package boxtable

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, rows Table) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
