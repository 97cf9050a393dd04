package ingest

import "testing"

func TestDetectDialect_Semicolon(t *testing.T) {
	lines := splitLines("CIF EMPRESA;CATEGORÍA;REVENUE\nA1;Digital;100")
	d, ok := detectDialect(lines)
	if !ok {
		t.Fatal("expected dialect")
	}
	if d.Delimiter != ';' {
		t.Fatalf("delimiter=%q want ';'", d.Delimiter)
	}
	if d.HeaderIndex != 0 {
		t.Fatalf("header index=%d want 0", d.HeaderIndex)
	}
}

func TestDetectDialect_CommaAndBannerLines(t *testing.T) {
	raw := "Exportado por Herramienta X\n\n\nCIF,NOMBRE,CATEGORIA,INGRESOS,EMPLEADOS\n"
	lines := splitLines(raw)
	d, ok := detectDialect(lines)
	if !ok {
		t.Fatal("expected dialect")
	}
	if d.Delimiter != ',' {
		t.Fatalf("delimiter=%q want ','", d.Delimiter)
	}
	// blank lines are gone, banner is line 0, header is line 1
	if d.HeaderIndex != 1 {
		t.Fatalf("header index=%d want 1", d.HeaderIndex)
	}
}

func TestDetectDialect_NoMarker(t *testing.T) {
	lines := splitLines("foo;bar;baz\n1;2;3")
	if _, ok := detectDialect(lines); ok {
		t.Fatal("expected no dialect without the header marker")
	}
}

func TestDetectDialect_MarkerBeyondScanLimit(t *testing.T) {
	raw := ""
	for i := 0; i < headerScanLimit; i++ {
		raw += "banner line\n"
	}
	raw += "CIF;NOMBRE;INGRESOS\n"
	if _, ok := detectDialect(splitLines(raw)); ok {
		t.Fatal("marker past the scan limit must not be found")
	}
}
