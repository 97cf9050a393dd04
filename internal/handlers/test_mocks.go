package handlers

import (
	"context"
	"errors"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/ingest"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

type sinkMock struct {
	UpsertFn func(ctx context.Context, rec models.CompanyRecord) error
	DeleteFn func(ctx context.Context, id string) error
	LatestFn func() []models.CompanyRecord
}

func (m *sinkMock) Upsert(ctx context.Context, rec models.CompanyRecord) error {
	if m.UpsertFn == nil {
		return errors.New("UpsertFn not set")
	}
	return m.UpsertFn(ctx, rec)
}
func (m *sinkMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}
func (m *sinkMock) Latest() []models.CompanyRecord {
	if m.LatestFn == nil {
		return nil
	}
	return m.LatestFn()
}

type ingestorMock struct {
	RunFn func(ctx context.Context, raw string) ingest.IngestReport
}

func (m *ingestorMock) Run(ctx context.Context, raw string) ingest.IngestReport {
	if m.RunFn == nil {
		return ingest.IngestReport{}
	}
	return m.RunFn(ctx, raw)
}

type advisorMock struct {
	AskFn func(ctx context.Context, question string, records []models.CompanyRecord) string
}

func (m *advisorMock) Ask(ctx context.Context, question string, records []models.CompanyRecord) string {
	if m.AskFn == nil {
		return ""
	}
	return m.AskFn(ctx, question, records)
}
