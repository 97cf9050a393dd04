package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/utils"
)

// Advise answers a free-form question about the current portfolio. The advisor
// itself never errors; a provider failure comes back as its fallback text.
func (h *CompanyHandler) Advise(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var dto AdvisorRequestDTO
	if err := utils.DecodeStrict(r.Body, &dto); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	if strings.TrimSpace(dto.Question) == "" {
		utils.BadRequest(w, "question is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	answer := h.Advisor.Ask(ctx, dto.Question, h.Sink.Latest())
	utils.WriteJSON(w, http.StatusOK, AdvisorResponseDTO{Answer: answer})
}
