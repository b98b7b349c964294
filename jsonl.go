package boxtable

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, rows Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
