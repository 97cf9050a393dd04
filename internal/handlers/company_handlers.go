package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/analytics"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/ingest"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/repository"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/utils"
)

// Sink is the record store as the handlers see it: writes go through Upsert, and
// all reads come from the last pushed snapshot, never from the database directly.
type Sink interface {
	Upsert(ctx context.Context, rec models.CompanyRecord) error
	Delete(ctx context.Context, id string) error
	Latest() []models.CompanyRecord
}

// Ingestor runs the parse-and-load pipeline over one raw export blob.
type Ingestor interface {
	Run(ctx context.Context, raw string) ingest.IngestReport
}

// Advisor produces free-form commentary; it degrades to a fallback string, it
// never fails.
type Advisor interface {
	Ask(ctx context.Context, question string, records []models.CompanyRecord) string
}

type CompanyHandler struct {
	Sink     Sink
	Ingestor Ingestor
	Advisor  Advisor
}

func NewCompanyHandler(sink Sink, ing Ingestor, adv Advisor) *CompanyHandler {
	return &CompanyHandler{Sink: sink, Ingestor: ing, Advisor: adv}
}

func (h *CompanyHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseCompanyPath accepts /api/companies/{id} and /api/companies/{id}/{sub}.
func parseCompanyPath(path string) (id, sub string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "api" || parts[1] != "companies" || parts[2] == "" {
		return "", "", false
	}
	if len(parts) == 3 {
		return parts[2], "", true
	}
	if len(parts) == 4 && parts[3] != "" {
		return parts[2], parts[3], true
	}
	return "", "", false
}

// Companies handles the collection route: GET lists the current snapshot.
func (h *CompanyHandler) Companies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		limit := 50
		skip := 0
		if l := q.Get("limit"); l != "" {
			if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 200 {
				limit = v
			}
		}
		if s := q.Get("skip"); s != "" {
			if v, err := strconv.Atoi(s); err == nil && v >= 0 {
				skip = v
			}
		}
		records := h.Sink.Latest()
		if skip >= len(records) {
			utils.WriteJSON(w, http.StatusOK, []models.CompanyRecord{})
			return
		}
		records = records[skip:]
		if len(records) > limit {
			records = records[:limit]
		}
		utils.WriteJSON(w, http.StatusOK, records)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// CompanyByID handles /api/companies/{id} and the analytics sub-resources
// /ratios, /peers and /valuation.
func (h *CompanyHandler) CompanyByID(w http.ResponseWriter, r *http.Request) {
	id, sub, ok := parseCompanyPath(r.URL.Path)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	if sub != "" {
		h.companyAnalytics(w, r, id, sub)
		return
	}

	switch r.Method {
	case http.MethodGet:
		rec, ok := h.findInSnapshot(id)
		if !ok {
			utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, rec)

	case http.MethodPut:
		var dto CompanyPutDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if err := validatePutDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		rec := dto.toRecord()
		// id in body, when present, must sanitize to the path id
		if rec.ID == "" {
			rec.ID = id
			rec.TaxID = id
		} else if rec.ID != id {
			utils.BadRequest(w, "tax_id in body must match the resource id in path")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := h.Sink.Upsert(ctx, rec); err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		utils.WriteJSON(w, http.StatusOK, rec)

	case http.MethodDelete:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := h.Sink.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
				return
			}
			utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CompanyHandler) companyAnalytics(w http.ResponseWriter, r *http.Request, id, sub string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rec, ok := h.findInSnapshot(id)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	switch sub {
	case "ratios":
		utils.WriteJSON(w, http.StatusOK, analytics.Ratios(rec))

	case "peers":
		n := analytics.DefaultPeerCount
		if v := r.URL.Query().Get("n"); v != "" {
			if p, err := strconv.Atoi(v); err == nil && p > 0 && p <= 50 {
				n = p
			}
		}
		utils.WriteJSON(w, http.StatusOK, analytics.Peers(rec, h.Sink.Latest(), n))

	case "valuation":
		q := r.URL.Query()
		multiple := 8.0
		adjust := 0.0
		if v := q.Get("multiple"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				multiple = f
			}
		}
		if v := q.Get("adjustment"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				adjust = f
			}
		}
		utils.WriteJSON(w, http.StatusOK, analytics.Valuate(rec, multiple, adjust))

	default:
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	}
}

// Summary serves the aggregation over the current snapshot.
func (h *CompanyHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	utils.WriteJSON(w, http.StatusOK, analytics.Summarize(h.Sink.Latest()))
}

func (h *CompanyHandler) findInSnapshot(id string) (models.CompanyRecord, bool) {
	for _, rec := range h.Sink.Latest() {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.CompanyRecord{}, false
}
