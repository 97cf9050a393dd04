package analytics

import "github.com/Thao1971/bud-advisors-app-sub000/internal/models"

// Assumption bounds exposed to the presentation layer's sliders.
const (
	MinMultiple  = 4.0
	MaxMultiple  = 15.0
	MinAdjustPct = -30.0
	MaxAdjustPct = 30.0
)

// Valuation is the result of one simulation run. Inputs echo the clamped
// assumptions actually used.
type Valuation struct {
	Multiple       float64 `json:"multiple"`
	AdjustPct      float64 `json:"adjust_pct"`
	AdjustedEBITDA float64 `json:"adjusted_ebitda"`
	NetDebtProxy   float64 `json:"net_debt_proxy"`
	EquityValue    float64 `json:"equity_value"`
}

// Valuate estimates equity value from an EBITDA multiple and a hypothetical
// personnel-cost adjustment that flows straight through to EBITDA. Net debt is
// proxied by current liabilities minus current assets, and the estimate never
// goes below zero.
func Valuate(r models.CompanyRecord, multiple, adjustPct float64) Valuation {
	multiple = clamp(multiple, MinMultiple, MaxMultiple)
	adjustPct = clamp(adjustPct, MinAdjustPct, MaxAdjustPct)

	adjusted := models.Val(r.EBITDA) - models.Val(r.PersonnelCost)*(adjustPct/100)
	netDebt := models.Val(r.CurrentLiabilities) - models.Val(r.CurrentAssets)
	equity := adjusted*multiple - netDebt
	if equity < 0 {
		equity = 0
	}
	return Valuation{
		Multiple:       multiple,
		AdjustPct:      adjustPct,
		AdjustedEBITDA: adjusted,
		NetDebtProxy:   netDebt,
		EquityValue:    equity,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
