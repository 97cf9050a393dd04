package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

// Upserter is the slice of the sink the loader needs.
type Upserter interface {
	Upsert(ctx context.Context, rec models.CompanyRecord) error
}

// IngestReport tells the caller how far a run got. Committed < Rows with a non-nil
// Err means a partial write: earlier rows are persisted, the rest were abandoned.
type IngestReport struct {
	Rows      int
	Committed int
	Err       error
}

func (r IngestReport) Partial() bool { return r.Err != nil && r.Committed > 0 }

// Loader writes parsed records into the sink one at a time. Sequential on purpose:
// it keeps writes ordered, makes the progress percentage honest, and stops cleanly
// at the first failure.
type Loader struct {
	sink Upserter
	log  *slog.Logger
}

func NewLoader(sink Upserter, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{sink: sink, log: log.With("cmp", "ingest.loader")}
}

// Load upserts every record, awaiting each before issuing the next. On the first
// failure the remaining rows are abandoned; the report carries the committed count
// so the caller can surface the partial result instead of guessing.
func (l *Loader) Load(ctx context.Context, records []models.CompanyRecord) IngestReport {
	rep := IngestReport{Rows: len(records)}
	lastPct := 0
	for i, rec := range records {
		if err := l.sink.Upsert(ctx, rec); err != nil {
			rep.Err = fmt.Errorf("upsert %s: %w", rec.ID, err)
			l.log.Error("ingest_aborted", "id", rec.ID, "committed", rep.Committed, "rows", rep.Rows, "err", err)
			return rep
		}
		rep.Committed++
		if pct := (i + 1) * 100 / len(records); pct/10 > lastPct/10 {
			lastPct = pct
			l.log.Info("ingest_progress", "pct", pct, "committed", rep.Committed)
		}
	}
	l.log.Info("ingest_done", "rows", rep.Rows)
	return rep
}
