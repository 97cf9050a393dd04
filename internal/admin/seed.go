package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

type Upserter interface {
	Upsert(ctx context.Context, c models.CompanyRecord) error
}

// SeedCompanies loads a small demo portfolio so a fresh install has something to
// show before the first real ingest.
func SeedCompanies(ctx context.Context, sink Upserter, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	seed := []models.CompanyRecord{
		{
			ID: "A1234567B", TaxID: "A-1234567-B",
			LegalName: "Talleres Norte S.L.", ShortName: "Talleres Norte",
			Category: "Industrial", Subcategory: "Mecanizado", FiscalYear: "2023",
			Revenue:            models.Num(1500000),
			PersonnelCost:      models.Num(420000),
			EBITDA:             models.Num(310000),
			NetIncome:          models.Num(180000),
			Equity:             models.Num(900000),
			CurrentAssets:      models.Num(520000),
			NonCurrentAssets:   models.Num(1100000),
			CurrentLiabilities: models.Num(340000),
			EmployeeCount:      models.Num(18),
		},
		{
			ID: "B7654321C", TaxID: "B-7654321-C",
			LegalName: "Distribuciones Sol S.A.", ShortName: "DistSol",
			Category: "Digital", FiscalYear: "2023",
			Revenue:            models.Num(2300000),
			PersonnelCost:      models.Num(610000),
			EBITDA:             models.Num(450000),
			NetIncome:          models.Num(260000),
			Equity:             models.Num(1200000),
			CurrentAssets:      models.Num(800000),
			CurrentLiabilities: models.Num(560000),
			EmployeeCount:      models.Num(31),
		},
		{
			ID: "C2468135D", TaxID: "C-2468135-D",
			LegalName: "Servicios Delta S.L.",
			Category:  "Servicios", FiscalYear: "2023",
			Revenue:       models.Num(640000),
			PersonnelCost: models.Num(280000),
			EBITDA:        models.Num(95000),
			NetIncome:     models.Num(41000),
			EmployeeCount: models.Num(9),
		},
	}

	for _, c := range seed {
		if err := sink.Upsert(ctx, c); err != nil {
			return fmt.Errorf("seed %s: %w", c.ID, err)
		}
		log.Info("seeded_company", "id", c.ID, "name", c.DisplayName())
	}
	return nil
}
