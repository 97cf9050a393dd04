package models

import "time"

// CompanyRecord is the canonical form of one company's financial statement for one
// fiscal year. Numeric fields are pointers: nil means "no valid value in the source",
// which is distinct from zero and must never reach ratio math unguarded.
type CompanyRecord struct {
	ID                  string `bson:"_id,omitempty" json:"id"`
	TaxID               string `bson:"tax_id" json:"tax_id"` // as it appeared in the file
	LegalName           string `bson:"legal_name,omitempty" json:"legal_name,omitempty"`
	ShortName           string `bson:"short_name,omitempty" json:"short_name,omitempty"`
	Category            string `bson:"category,omitempty" json:"category,omitempty"`
	Subcategory         string `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	FiscalYear          string `bson:"fiscal_year,omitempty" json:"fiscal_year,omitempty"`
	URL                 string `bson:"url,omitempty" json:"url,omitempty"`
	BusinessDescription string `bson:"business_description,omitempty" json:"business_description,omitempty"`

	Revenue            *float64 `bson:"revenue,omitempty" json:"revenue,omitempty"`
	ProcurementCost    *float64 `bson:"procurement_cost,omitempty" json:"procurement_cost,omitempty"`
	PersonnelCost      *float64 `bson:"personnel_cost,omitempty" json:"personnel_cost,omitempty"`
	OperatingCost      *float64 `bson:"operating_cost,omitempty" json:"operating_cost,omitempty"`
	EBITDA             *float64 `bson:"ebitda,omitempty" json:"ebitda,omitempty"`
	OperatingResult    *float64 `bson:"operating_result,omitempty" json:"operating_result,omitempty"`
	NetIncome          *float64 `bson:"net_income,omitempty" json:"net_income,omitempty"`
	Equity             *float64 `bson:"equity,omitempty" json:"equity,omitempty"`
	CurrentAssets      *float64 `bson:"current_assets,omitempty" json:"current_assets,omitempty"`
	NonCurrentAssets   *float64 `bson:"non_current_assets,omitempty" json:"non_current_assets,omitempty"`
	CurrentLiabilities *float64 `bson:"current_liabilities,omitempty" json:"current_liabilities,omitempty"`
	EmployeeCount      *float64 `bson:"employee_count,omitempty" json:"employee_count,omitempty"`

	// Columns the classifier does not recognize, keyed by the original header.
	Extra map[string]string `bson:"extra,omitempty" json:"extra,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Num wraps a literal for the pointer fields.
func Num(v float64) *float64 { return &v }

// Val reads a numeric field treating absent as zero. Only for contexts where the
// business rule says absence counts as zero (sums, distances); ratio guards must
// check the pointer instead.
func Val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// DisplayName picks the best human-readable name for the record.
func (c *CompanyRecord) DisplayName() string {
	if c.ShortName != "" {
		return c.ShortName
	}
	if c.LegalName != "" {
		return c.LegalName
	}
	return c.TaxID
}
