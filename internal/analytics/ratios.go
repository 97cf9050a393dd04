package analytics

import "github.com/Thao1971/bud-advisors-app-sub000/internal/models"

// RatioSet holds per-company ratios. A nil entry is the defined "undefined ratio":
// the divisor was zero or absent. The presentation layer renders it as a dash;
// nothing downstream ever sees Inf or NaN.
type RatioSet struct {
	EBITDAMargin       *float64 `json:"ebitda_margin,omitempty"`
	NetMargin          *float64 `json:"net_margin,omitempty"`
	ROE                *float64 `json:"roe,omitempty"`
	ROA                *float64 `json:"roa,omitempty"`
	LiquidityRatio     *float64 `json:"liquidity_ratio,omitempty"`
	RevenuePerEmployee *float64 `json:"revenue_per_employee,omitempty"`
	CostPerEmployee    *float64 `json:"cost_per_employee,omitempty"`
}

// Ratios is a pure function of one record.
func Ratios(r models.CompanyRecord) RatioSet {
	totalAssets := addOpt(r.CurrentAssets, r.NonCurrentAssets)
	return RatioSet{
		EBITDAMargin:       safeDiv(r.EBITDA, r.Revenue),
		NetMargin:          safeDiv(r.NetIncome, r.Revenue),
		ROE:                safeDiv(r.NetIncome, r.Equity),
		ROA:                safeDiv(r.NetIncome, totalAssets),
		LiquidityRatio:     safeDiv(r.CurrentAssets, r.CurrentLiabilities),
		RevenuePerEmployee: safeDiv(r.Revenue, r.EmployeeCount),
		CostPerEmployee:    safeDiv(r.PersonnelCost, r.EmployeeCount),
	}
}

// safeDiv is the guarded division every ratio goes through: absent numerator,
// absent divisor or divisor zero all yield the undefined result.
func safeDiv(num, div *float64) *float64 {
	if num == nil || div == nil || *div == 0 {
		return nil
	}
	return models.Num(*num / *div)
}

// addOpt sums two optional values; both absent stays absent.
func addOpt(a, b *float64) *float64 {
	if a == nil && b == nil {
		return nil
	}
	return models.Num(models.Val(a) + models.Val(b))
}
