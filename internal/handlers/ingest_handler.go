package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/utils"
)

// IngestResult reports one ingestion run: how many rows parsed, how many made it
// into the store, and whether the run stopped early.
type IngestResult struct {
	Rows      int    `json:"rows"`
	Committed int    `json:"committed"`
	Partial   bool   `json:"partial"`
	Error     string `json:"error,omitempty"`
}

// ingestBodyLimit keeps an oversized upload from exhausting memory.
const ingestBodyLimit = 16 << 20 // 16 MiB

// Ingest accepts one spreadsheet export as raw text (or {"content": "..."} JSON)
// and runs it through the pipeline. Unparseable input is a zero-row success, not
// an error; a write failure mid-run returns the partial committed count.
func (h *CompanyHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	raw, err := readIngestBody(w, r)
	if err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	rep := h.Ingestor.Run(ctx, raw)

	res := IngestResult{Rows: rep.Rows, Committed: rep.Committed, Partial: rep.Partial()}
	code := http.StatusOK
	if rep.Err != nil {
		res.Error = rep.Err.Error()
		code = http.StatusInternalServerError
	}
	utils.WriteJSON(w, code, res)
}

func readIngestBody(w http.ResponseWriter, r *http.Request) (string, error) {
	body := http.MaxBytesReader(w, r.Body, ingestBodyLimit)
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var dto IngestRequestDTO
		if err := utils.DecodeStrict(body, &dto); err != nil {
			return "", err
		}
		return dto.Content, nil
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
