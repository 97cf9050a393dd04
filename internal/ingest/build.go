package ingest

import (
	"strings"
	"time"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/utils"
)

// canonical field targets for the header dictionary
const (
	fTaxID = iota
	fLegalName
	fShortName
	fCategory
	fSubcategory
	fFiscalYear
	fURL
	fDescription
	fRevenue
	fProcurementCost
	fPersonnelCost
	fOperatingCost
	fEBITDA
	fOperatingResult
	fNetIncome
	fEquity
	fCurrentAssets
	fNonCurrentAssets
	fCurrentLiabilities
	fEmployeeCount
)

// headerDict maps uppercased header names to canonical fields. The revenue line has
// several spellings in the wild, all of them listed. Headers not found here land in
// Extra untouched.
var headerDict = map[string]int{
	"CIF":                               fTaxID,
	"CIF EMPRESA":                       fTaxID,
	"NIF":                               fTaxID,
	"RAZON SOCIAL":                      fLegalName,
	"RAZÓN SOCIAL":                      fLegalName,
	"NOMBRE":                            fLegalName,
	"NOMBRE COMERCIAL":                  fShortName,
	"CATEGORIA":                         fCategory,
	"CATEGORÍA":                         fCategory,
	"SECTOR":                            fCategory,
	"SUBCATEGORIA":                      fSubcategory,
	"SUBCATEGORÍA":                      fSubcategory,
	"SUBSECTOR":                         fSubcategory,
	"EJERCICIO":                         fFiscalYear,
	"AÑO":                               fFiscalYear,
	"WEB":                               fURL,
	"URL":                               fURL,
	"DESCRIPCION ACTIVIDAD":             fDescription,
	"DESCRIPCIÓN ACTIVIDAD":             fDescription,
	"ACTIVIDAD":                         fDescription,
	"IMPORTE NETO CIFRA NEGOCIO":        fRevenue,
	"IMPORTE NETO CIFRA DE NEGOCIO":     fRevenue,
	"IMPORTE NETO DE LA CIFRA NEGOCIO":  fRevenue,
	"IMPORTE NETO CIFRA DE NEGOCIOS":    fRevenue,
	"INGRESOS":                          fRevenue,
	"VENTAS":                            fRevenue,
	"REVENUE":                           fRevenue,
	"APROVISIONAMIENTOS":                fProcurementCost,
	"APROVISIONAMIENTO":                 fProcurementCost,
	"GASTOS DE PERSONAL":                fPersonnelCost,
	"GASTOS PERSONAL":                   fPersonnelCost,
	"OTROS GASTOS DE EXPLOTACION":       fOperatingCost,
	"OTROS GASTOS DE EXPLOTACIÓN":       fOperatingCost,
	"GASTOS EXPLOTACION":                fOperatingCost,
	"GASTOS EXPLOTACIÓN":                fOperatingCost,
	"EBITDA":                            fEBITDA,
	"RESULTADO EXPLOTACION":             fOperatingResult,
	"RESULTADO EXPLOTACIÓN":             fOperatingResult,
	"RESULTADO DE EXPLOTACION":          fOperatingResult,
	"RESULTADO DE EXPLOTACIÓN":          fOperatingResult,
	"RESULTADO DEL EJERCICIO":           fNetIncome,
	"RESULTADO NETO":                    fNetIncome,
	"PATRIMONIO NETO":                   fEquity,
	"FONDOS PROPIOS":                    fEquity,
	"ACTIVO CORRIENTE":                  fCurrentAssets,
	"ACTIVO NO CORRIENTE":               fNonCurrentAssets,
	"PASIVO CORRIENTE":                  fCurrentLiabilities,
	"EMPLEADOS":                         fEmployeeCount,
	"NUMERO EMPLEADOS":                  fEmployeeCount,
	"NÚMERO EMPLEADOS":                  fEmployeeCount,
	"PLANTILLA":                         fEmployeeCount,
	"PLANTILLA MEDIA":                   fEmployeeCount,
}

// buildRecord assembles one canonical record from an already-split row. ok=false
// means the row has no usable identity and must be dropped.
func buildRecord(headers, fields []string, cls classifier, now time.Time) (models.CompanyRecord, bool) {
	rec := models.CompanyRecord{CreatedAt: now, UpdatedAt: now}

	n := len(fields)
	if len(headers) < n {
		n = len(headers)
	}
	for i := 0; i < n; i++ {
		header := headers[i]
		raw := fields[i]
		target, known := headerDict[strings.ToUpper(header)]
		if !known {
			if raw != "" {
				if rec.Extra == nil {
					rec.Extra = make(map[string]string)
				}
				rec.Extra[header] = raw
			}
			continue
		}
		if cls.isNumeric(header) && target >= fRevenue {
			if v, ok := NormalizeNumber(raw); ok {
				setNumeric(&rec, target, v)
			}
			continue
		}
		setText(&rec, target, raw)
	}

	rec.ID = utils.SanitizeTaxID(rec.TaxID)
	if !utils.ValidateTaxID(rec.ID) {
		return models.CompanyRecord{}, false
	}
	return rec, true
}

func setText(rec *models.CompanyRecord, target int, v string) {
	switch target {
	case fTaxID:
		rec.TaxID = v
	case fLegalName:
		rec.LegalName = v
	case fShortName:
		rec.ShortName = v
	case fCategory:
		rec.Category = v
	case fSubcategory:
		rec.Subcategory = v
	case fFiscalYear:
		rec.FiscalYear = v
	case fURL:
		rec.URL = v
	case fDescription:
		rec.BusinessDescription = v
	}
}

func setNumeric(rec *models.CompanyRecord, target int, v float64) {
	switch target {
	case fRevenue:
		rec.Revenue = models.Num(v)
	case fProcurementCost:
		rec.ProcurementCost = models.Num(v)
	case fPersonnelCost:
		rec.PersonnelCost = models.Num(v)
	case fOperatingCost:
		rec.OperatingCost = models.Num(v)
	case fEBITDA:
		rec.EBITDA = models.Num(v)
	case fOperatingResult:
		rec.OperatingResult = models.Num(v)
	case fNetIncome:
		rec.NetIncome = models.Num(v)
	case fEquity:
		rec.Equity = models.Num(v)
	case fCurrentAssets:
		rec.CurrentAssets = models.Num(v)
	case fNonCurrentAssets:
		rec.NonCurrentAssets = models.Num(v)
	case fCurrentLiabilities:
		rec.CurrentLiabilities = models.Num(v)
	case fEmployeeCount:
		rec.EmployeeCount = models.Num(v)
	}
}
