package ingest

import "strings"

// numericKeywords marks a header as carrying a monetary/count quantity when its
// uppercased name contains any entry. Spanish statement vocabulary plus the English
// equivalents that show up in mixed exports. Kept as data so another locale's
// vocabulary can be swapped in without touching the parser.
var numericKeywords = []string{
	"IMPORTE",
	"CIFRA",
	"INGRESO",
	"REVENUE",
	"VENTAS",
	"GASTO",
	"EXPENSE",
	"COSTE",
	"RESULTADO",
	"RESULT",
	"EBITDA",
	"ACTIVO",
	"ASSET",
	"PASIVO",
	"LIABILIT",
	"PATRIMONIO",
	"FONDOS PROPIOS",
	"EQUITY",
	"EMPLEADO",
	"PLANTILLA",
	"HEADCOUNT",
	"APROVISIONAMIENTO",
	"PROCUREMENT",
}

// classifier decides once per file, per header, whether a column is numeric.
type classifier struct {
	numeric map[string]bool // header -> numeric?
}

func newClassifier(headers []string, keywords []string) classifier {
	c := classifier{numeric: make(map[string]bool, len(headers))}
	for _, h := range headers {
		c.numeric[h] = matchesAny(h, keywords)
	}
	return c
}

func (c classifier) isNumeric(header string) bool {
	return c.numeric[header]
}

func matchesAny(header string, keywords []string) bool {
	up := strings.ToUpper(header)
	for _, kw := range keywords {
		if strings.Contains(up, kw) {
			return true
		}
	}
	return false
}
