package analytics

import (
	"math"
	"sort"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

// DefaultPeerCount is how many peers the presentation layer shows by default.
const DefaultPeerCount = 4

// Peers ranks the record set by closeness in revenue to the reference company,
// absent revenue counting as zero. The reference itself is excluded by id. The
// sort is stable so ties keep the record-set order.
func Peers(ref models.CompanyRecord, records []models.CompanyRecord, n int) []models.CompanyRecord {
	if n <= 0 {
		n = DefaultPeerCount
	}
	refRev := models.Val(ref.Revenue)

	candidates := make([]models.CompanyRecord, 0, len(records))
	for _, r := range records {
		if r.ID == ref.ID {
			continue
		}
		candidates = append(candidates, r)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		di := math.Abs(models.Val(candidates[i].Revenue) - refRev)
		dj := math.Abs(models.Val(candidates[j].Revenue) - refRev)
		return di < dj
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
