package utils

/*

go test -run 'TestSanitizeTaxID' -v ./internal/utils -count=1

*/

import "testing"

func TestSanitizeTaxID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A-1234567 B", "A1234567B"},
		{"a.12/34.567-b", "a1234567b"},
		{"B 98765432", "B98765432"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeTaxID(tc.in); got != tc.want {
			t.Fatalf("in=%q want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestValidateTaxID(t *testing.T) {
	if ValidateTaxID("") {
		t.Fatal("empty id must be invalid")
	}
	if !ValidateTaxID("A1234567B") {
		t.Fatal("sanitized id must be valid")
	}
}
