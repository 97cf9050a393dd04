package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/ingest"
)

func TestIngest_RawText(t *testing.T) {
	var gotRaw string
	h := &CompanyHandler{
		Ingestor: &ingestorMock{
			RunFn: func(_ context.Context, raw string) ingest.IngestReport {
				gotRaw = raw
				return ingest.IngestReport{Rows: 3, Committed: 3}
			},
		},
	}

	body := bytes.NewBufferString("CIF;NOMBRE\nA1;Uno\n")
	req := httptest.NewRequest(http.MethodPost, "/api/ingest", body)
	req.Header.Set("Content-Type", "text/csv")
	rr := httptest.NewRecorder()
	h.Ingest(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if gotRaw != "CIF;NOMBRE\nA1;Uno\n" {
		t.Fatalf("raw=%q", gotRaw)
	}
	var res IngestResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if res.Rows != 3 || res.Committed != 3 || res.Partial {
		t.Fatalf("result=%+v", res)
	}
}

func TestIngest_JSONEnvelope(t *testing.T) {
	var gotRaw string
	h := &CompanyHandler{
		Ingestor: &ingestorMock{
			RunFn: func(_ context.Context, raw string) ingest.IngestReport {
				gotRaw = raw
				return ingest.IngestReport{Rows: 1, Committed: 1}
			},
		},
	}

	body := bytes.NewBufferString(`{"content": "CIF;NOMBRE\nA1;Uno"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/ingest", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Ingest(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if gotRaw != "CIF;NOMBRE\nA1;Uno" {
		t.Fatalf("raw=%q", gotRaw)
	}
}

func TestIngest_ZeroRowsIsSuccess(t *testing.T) {
	h := &CompanyHandler{
		Ingestor: &ingestorMock{
			RunFn: func(_ context.Context, _ string) ingest.IngestReport {
				return ingest.IngestReport{}
			},
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/ingest", bytes.NewBufferString("not a spreadsheet"))
	rr := httptest.NewRecorder()
	h.Ingest(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var res IngestResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if res.Rows != 0 || res.Committed != 0 || res.Error != "" {
		t.Fatalf("result=%+v", res)
	}
}

func TestIngest_PartialFailure(t *testing.T) {
	h := &CompanyHandler{
		Ingestor: &ingestorMock{
			RunFn: func(_ context.Context, _ string) ingest.IngestReport {
				return ingest.IngestReport{Rows: 5, Committed: 2, Err: errors.New("write failed")}
			},
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/ingest", bytes.NewBufferString("CIF;...\n"))
	rr := httptest.NewRecorder()
	h.Ingest(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var res IngestResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if res.Rows != 5 || res.Committed != 2 || !res.Partial || res.Error == "" {
		t.Fatalf("result=%+v", res)
	}
}

func TestIngest_BadJSONEnvelope(t *testing.T) {
	h := &CompanyHandler{Ingestor: &ingestorMock{}}
	req := httptest.NewRequest(http.MethodPost, "/api/ingest", bytes.NewBufferString(`{"content": `))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Ingest(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rr.Code)
	}
}

func TestIngest_MethodNotAllowed(t *testing.T) {
	h := &CompanyHandler{Ingestor: &ingestorMock{}}
	req := httptest.NewRequest(http.MethodGet, "/api/ingest", nil)
	rr := httptest.NewRecorder()
	h.Ingest(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d", rr.Code)
	}
}
