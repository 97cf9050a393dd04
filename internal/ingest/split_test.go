package ingest

import (
	"reflect"
	"testing"
)

func TestSplitFields(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{`a;b;c`, []string{"a", "b", "c"}},
		{`"Acme; S.L.";Digital;100`, []string{"Acme; S.L.", "Digital", "100"}},
		{` a ; "b" ;c`, []string{"a", "b", "c"}},
		{`a;;c`, []string{"a", "", "c"}},
		{`trailing;`, []string{"trailing", ""}},
	}
	for _, tc := range cases {
		if got := splitFields(tc.line, ';'); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("line=%q want=%#v got=%#v", tc.line, tc.want, got)
		}
	}
}

func TestSplitFields_QuotedComma(t *testing.T) {
	got := splitFields(`"Acme, S.L.",Digital,"1,200"`, ',')
	want := []string{"Acme, S.L.", "Digital", "1,200"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want=%#v got=%#v", want, got)
	}
}
