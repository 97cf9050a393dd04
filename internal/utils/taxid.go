package utils

import "unicode"

// SanitizeTaxID strips everything that is not a letter or digit, keeping case.
// "A-1234567 B" -> "A1234567B". The result doubles as the record id.
func SanitizeTaxID(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// ValidateTaxID only checks that sanitization left something behind. A row whose
// identifier sanitizes to empty has no identity and is dropped upstream.
func ValidateTaxID(id string) bool {
	return id != ""
}
