package ingest

import "strings"

// headerMarker identifies the header row: exports from every upstream tool carry a
// tax-identifier column whose name contains "CIF".
const headerMarker = "CIF"

// headerScanLimit caps how deep we look for the header. Exports sometimes open with
// a few banner lines, never more than a handful.
const headerScanLimit = 20

// Dialect is the per-file parsing decision: which line is the header and what the
// field delimiter is. Quoting is always `"` and is handled by splitFields.
type Dialect struct {
	Delimiter   rune
	HeaderIndex int // index into the non-empty trimmed lines
}

// detectDialect scans the first lines for the header marker and infers the
// delimiter from punctuation counts on the header line. ok=false means the blob is
// not a recognizable export; callers treat that as "zero records", not a failure.
func detectDialect(lines []string) (Dialect, bool) {
	limit := len(lines)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		if !strings.Contains(strings.ToUpper(lines[i]), headerMarker) {
			continue
		}
		d := Dialect{Delimiter: ',', HeaderIndex: i}
		if strings.Count(lines[i], ";") > strings.Count(lines[i], ",") {
			d.Delimiter = ';'
		}
		return d, true
	}
	return Dialect{}, false
}

// splitLines breaks the raw blob into trimmed, non-empty lines.
func splitLines(raw string) []string {
	var out []string
	for _, ln := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
