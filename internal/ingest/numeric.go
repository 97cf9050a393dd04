package ingest

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeNumber converts a locale-formatted numeric string into a float64.
// European "1.234,56" and international "1,234.56" both come through these files;
// when both separators are present the one appearing last is the decimal point.
// A string with only a comma is read as a decimal comma, so "1,200" yields 1.2 —
// a known limitation of the heuristic, left as-is on purpose.
// ok=false means absent: empty input or no parseable number. Never returns NaN/Inf.
func NormalizeNumber(raw string) (float64, bool) {
	s := stripNumericNoise(raw)
	if s == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// comma is decimal: drop dots, then swap the comma
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func stripNumericNoise(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch r {
		case '€', '$', '£', '%', ' ', '\t', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
