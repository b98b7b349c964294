package boxtable

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, rows Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}
