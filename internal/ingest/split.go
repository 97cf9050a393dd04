package ingest

import "strings"

// minFields is the row noise threshold: anything splitting into fewer fields is a
// blank tail, a stray total line or similar and is discarded.
const minFields = 5

// splitFields splits one line on the dialect delimiter, except inside quoted spans:
// `"Acme, S.L.";1.200` with delimiter ',' keeps the company name whole. Surrounding
// quotes and whitespace are stripped from each field.
func splitFields(line string, delim rune) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			fields = append(fields, cleanField(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, cleanField(b.String()))
	return fields
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
}
