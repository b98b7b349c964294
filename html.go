package boxtable

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// writeHTML renders rows as an HTML table body. Cells are escaped.
func writeHTML(w io.Writer, rows Table) error {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	sb.WriteString("  <tbody>\n")
	for _, row := range rows {
		sb.WriteString("    <tr>\n")
		for _, cell := range row {
			fmt.Fprintf(&sb, "      <td>%s</td>\n", html.EscapeString(cell))
		}
		sb.WriteString("    </tr>\n")
	}
	sb.WriteString("  </tbody>\n")
	sb.WriteString("</table>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
