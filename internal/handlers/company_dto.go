package handlers

import (
	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/utils"
)

type IngestRequestDTO struct {
	Content string `json:"content"`
}

type AdvisorRequestDTO struct {
	Question string `json:"question"`
}

type AdvisorResponseDTO struct {
	Answer string `json:"answer"`
}

// CompanyPutDTO is a full record for insert-or-replace. Numeric fields are
// pointers: omitted means absent, and absent is stored as absent.
type CompanyPutDTO struct {
	TaxID               string `json:"tax_id"`
	LegalName           string `json:"legal_name"`
	ShortName           string `json:"short_name"`
	Category            string `json:"category"`
	Subcategory         string `json:"subcategory"`
	FiscalYear          string `json:"fiscal_year"`
	URL                 string `json:"url"`
	BusinessDescription string `json:"business_description"`

	Revenue            *float64 `json:"revenue,omitempty"`
	ProcurementCost    *float64 `json:"procurement_cost,omitempty"`
	PersonnelCost      *float64 `json:"personnel_cost,omitempty"`
	OperatingCost      *float64 `json:"operating_cost,omitempty"`
	EBITDA             *float64 `json:"ebitda,omitempty"`
	OperatingResult    *float64 `json:"operating_result,omitempty"`
	NetIncome          *float64 `json:"net_income,omitempty"`
	Equity             *float64 `json:"equity,omitempty"`
	CurrentAssets      *float64 `json:"current_assets,omitempty"`
	NonCurrentAssets   *float64 `json:"non_current_assets,omitempty"`
	CurrentLiabilities *float64 `json:"current_liabilities,omitempty"`
	EmployeeCount      *float64 `json:"employee_count,omitempty"`
}

func (d CompanyPutDTO) toRecord() models.CompanyRecord {
	return models.CompanyRecord{
		ID:                  utils.SanitizeTaxID(d.TaxID),
		TaxID:               d.TaxID,
		LegalName:           d.LegalName,
		ShortName:           d.ShortName,
		Category:            d.Category,
		Subcategory:         d.Subcategory,
		FiscalYear:          d.FiscalYear,
		URL:                 d.URL,
		BusinessDescription: d.BusinessDescription,
		Revenue:             d.Revenue,
		ProcurementCost:     d.ProcurementCost,
		PersonnelCost:       d.PersonnelCost,
		OperatingCost:       d.OperatingCost,
		EBITDA:              d.EBITDA,
		OperatingResult:     d.OperatingResult,
		NetIncome:           d.NetIncome,
		Equity:              d.Equity,
		CurrentAssets:       d.CurrentAssets,
		NonCurrentAssets:    d.NonCurrentAssets,
		CurrentLiabilities:  d.CurrentLiabilities,
		EmployeeCount:       d.EmployeeCount,
	}
}
