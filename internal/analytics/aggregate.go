package analytics

import (
	"github.com/montanaflynn/stats"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

// DefaultCategory labels records whose export carried no category column.
const DefaultCategory = "Sin categoría"

type CategoryStats struct {
	Count      int     `json:"count"`
	RevenueSum float64 `json:"revenue_sum"`
}

// Summary is the portfolio-level view recomputed from scratch on every snapshot.
// Sums treat absent as zero; the distribution figures skip absent values entirely.
type Summary struct {
	Companies     int                      `json:"companies"`
	TotalRevenue  float64                  `json:"total_revenue"`
	TotalEBITDA   float64                  `json:"total_ebitda"`
	Categories    map[string]CategoryStats `json:"categories"`
	MeanRevenue   *float64                 `json:"mean_revenue,omitempty"`
	MedianRevenue *float64                 `json:"median_revenue,omitempty"`
	MedianMargin  *float64                 `json:"median_ebitda_margin,omitempty"`
}

// Summarize walks the full record set once. O(n) per snapshot is the deal here:
// the set stays in the hundreds-to-low-thousands, and full recompute means there
// is no incremental state to get stale.
func Summarize(records []models.CompanyRecord) Summary {
	s := Summary{
		Companies:  len(records),
		Categories: make(map[string]CategoryStats),
	}
	var revenues, margins []float64
	for _, r := range records {
		s.TotalRevenue += models.Val(r.Revenue)
		s.TotalEBITDA += models.Val(r.EBITDA)

		cat := r.Category
		if cat == "" {
			cat = DefaultCategory
		}
		cs := s.Categories[cat]
		cs.Count++
		cs.RevenueSum += models.Val(r.Revenue)
		s.Categories[cat] = cs

		if r.Revenue != nil {
			revenues = append(revenues, *r.Revenue)
			if r.EBITDA != nil && *r.Revenue != 0 {
				margins = append(margins, *r.EBITDA / *r.Revenue)
			}
		}
	}

	if v, err := stats.Mean(revenues); err == nil {
		s.MeanRevenue = models.Num(v)
	}
	if v, err := stats.Median(revenues); err == nil {
		s.MedianRevenue = models.Num(v)
	}
	if v, err := stats.Median(margins); err == nil {
		s.MedianMargin = models.Num(v)
	}
	return s
}
