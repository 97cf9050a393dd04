package ingest

/*

go test -run 'TestNormalizeNumber' -v ./internal/ingest -count=1

*/

import "testing"

func TestNormalizeNumber(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		absent bool
	}{
		{"1.234,56", 1234.56, false},
		{"1,234.56", 1234.56, false},
		{"1200", 1200, false},
		{"1.500.000,00", 1500000, false},
		{"1,500,000.00", 1500000, false},
		{"", 0, true},
		{"n/d", 0, true},
		{"€ 950,50", 950.50, false},
		{"12 345,6", 12345.6, false},
		{"-1.234,5", -1234.5, false},
		{"15%", 15, false},
		// single comma with three trailing digits reads as a decimal comma;
		// known heuristic limitation, asserted here so nobody "fixes" it blind
		{"1,200", 1.2, false},
	}
	for _, tc := range cases {
		got, ok := NormalizeNumber(tc.in)
		if tc.absent {
			if ok {
				t.Fatalf("in=%q want absent, got %v", tc.in, got)
			}
			continue
		}
		if !ok {
			t.Fatalf("in=%q unexpectedly absent", tc.in)
		}
		if got != tc.want {
			t.Fatalf("in=%q want=%v got=%v", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeNumber_NeverNaN(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "-Inf", "+Inf", "nan"} {
		if v, ok := NormalizeNumber(in); ok {
			t.Fatalf("in=%q must be absent, got %v", in, v)
		}
	}
}
