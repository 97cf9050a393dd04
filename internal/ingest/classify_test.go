package ingest

import "testing"

func TestClassifier(t *testing.T) {
	headers := []string{
		"CIF EMPRESA",
		"NOMBRE",
		"CATEGORÍA",
		"IMPORTE NETO CIFRA NEGOCIO",
		"Gastos de Personal",
		"EBITDA",
		"Activo Corriente",
		"PASIVO CORRIENTE",
		"Plantilla Media",
		"WEB",
	}
	cls := newClassifier(headers, numericKeywords)

	numeric := []string{
		"IMPORTE NETO CIFRA NEGOCIO",
		"Gastos de Personal",
		"EBITDA",
		"Activo Corriente",
		"PASIVO CORRIENTE",
		"Plantilla Media",
	}
	text := []string{"CIF EMPRESA", "NOMBRE", "CATEGORÍA", "WEB"}

	for _, h := range numeric {
		if !cls.isNumeric(h) {
			t.Fatalf("%q should classify numeric", h)
		}
	}
	for _, h := range text {
		if cls.isNumeric(h) {
			t.Fatalf("%q should classify text", h)
		}
	}
}
