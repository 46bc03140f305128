package services

import "strings"

// parseCSVLine tokenizes a single line into raw cells. Quoting follows
// RFC4180: cells may be wrapped in double quotes, and a doubled quote inside
// a quoted cell yields one literal quote. The parser is scoped to one line,
// so quoted cells cannot span line breaks.
func parseCSVLine(line string) []string {
	var cells []string
	var cell strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			cells = append(cells, cell.String())
			cell.Reset()
		default:
			cell.WriteByte(c)
		}
	}
	cells = append(cells, cell.String())
	return cells
}

// encodeCSVCell emits a cell for delimited-text output. Values containing a
// comma, quote or newline are quote-wrapped with internal quotes doubled;
// everything else is emitted bare. parseCSVLine round-trips any value this
// produces.
func encodeCSVCell(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// encodeCSVRow joins encoded cells with commas.
func encodeCSVRow(cells []string) string {
	encoded := make([]string, len(cells))
	for i, c := range cells {
		encoded[i] = encodeCSVCell(c)
	}
	return strings.Join(encoded, ",")
}

// splitLines breaks a document into lines, tolerating both LF and CRLF
// endings.
func splitLines(doc string) []string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	doc = strings.TrimSuffix(doc, "\n")
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}
