package analytics

import (
	"testing"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

func company(id string, revenue float64) models.CompanyRecord {
	return models.CompanyRecord{ID: id, TaxID: id, Revenue: models.Num(revenue)}
}

func TestPeers_RankedByRevenueDistance(t *testing.T) {
	set := []models.CompanyRecord{
		company("A", 100),
		company("B", 90),
		company("C", 80),
		company("D", 500),
	}
	got := Peers(set[0], set, 3)
	want := []string{"B", "C", "D"} // distances 10, 20, 400
	if len(got) != 3 {
		t.Fatalf("len=%d want 3", len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("peer %d = %s want %s", i, got[i].ID, id)
		}
	}
}

func TestPeers_ExcludesReference(t *testing.T) {
	set := []models.CompanyRecord{company("A", 100), company("B", 100)}
	got := Peers(set[0], set, 4)
	if len(got) != 1 || got[0].ID != "B" {
		t.Fatalf("got=%#v", got)
	}
}

// Ties keep the original record-set order: the sort is stable.
func TestPeers_StableTies(t *testing.T) {
	set := []models.CompanyRecord{
		company("REF", 100),
		company("X", 110),
		company("Y", 90),
		company("Z", 110),
	}
	got := Peers(set[0], set, 3)
	want := []string{"X", "Y", "Z"} // all distance 10
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("peer %d = %s want %s", i, got[i].ID, id)
		}
	}
}

func TestPeers_AbsentRevenueIsZero(t *testing.T) {
	set := []models.CompanyRecord{
		company("REF", 10),
		{ID: "N", TaxID: "N"}, // absent revenue -> distance 10
		company("FAR", 1000),
	}
	got := Peers(set[0], set, 1)
	if len(got) != 1 || got[0].ID != "N" {
		t.Fatalf("got=%#v", got)
	}
}

func TestPeers_DefaultCount(t *testing.T) {
	set := []models.CompanyRecord{
		company("REF", 0), company("1", 1), company("2", 2), company("3", 3),
		company("4", 4), company("5", 5), company("6", 6),
	}
	got := Peers(set[0], set, 0)
	if len(got) != DefaultPeerCount {
		t.Fatalf("len=%d want %d", len(got), DefaultPeerCount)
	}
}
