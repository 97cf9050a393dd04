package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

// FallbackMessage is what callers see whenever the provider fails for any reason.
// Advisory text is a convenience, never a fault that reaches the pipeline.
const FallbackMessage = "El asesor no está disponible en este momento. Inténtalo de nuevo más tarde."

// maxPromptRecords caps how much of the portfolio is embedded in the prompt.
const maxPromptRecords = 10

// Provider is a text-in/text-out generative service.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Advisor struct {
	provider Provider
	log      *slog.Logger
}

func New(provider Provider, log *slog.Logger) *Advisor {
	if log == nil {
		log = slog.Default()
	}
	return &Advisor{provider: provider, log: log.With("cmp", "advisor")}
}

// Ask builds a prompt embedding a compact projection of at most ten records and
// returns the provider's answer, or the fixed fallback text on any failure.
func (a *Advisor) Ask(ctx context.Context, question string, records []models.CompanyRecord) string {
	if a.provider == nil {
		return FallbackMessage
	}
	prompt := buildPrompt(question, records)
	answer, err := a.provider.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(answer) == "" {
		a.log.Warn("advisor_fallback", "err", err)
		return FallbackMessage
	}
	return answer
}

// projection is what the model gets to see per company: enough for commentary,
// small enough to keep the prompt compact.
type projection struct {
	Name          string   `json:"name"`
	Category      string   `json:"category,omitempty"`
	Revenue       *float64 `json:"revenue,omitempty"`
	EBITDA        *float64 `json:"ebitda,omitempty"`
	NetIncome     *float64 `json:"net_income,omitempty"`
	EmployeeCount *float64 `json:"employees,omitempty"`
}

func buildPrompt(question string, records []models.CompanyRecord) string {
	if len(records) > maxPromptRecords {
		records = records[:maxPromptRecords]
	}
	proj := make([]projection, 0, len(records))
	for _, r := range records {
		proj = append(proj, projection{
			Name:          r.DisplayName(),
			Category:      r.Category,
			Revenue:       r.Revenue,
			EBITDA:        r.EBITDA,
			NetIncome:     r.NetIncome,
			EmployeeCount: r.EmployeeCount,
		})
	}
	data, _ := json.Marshal(proj)

	var b strings.Builder
	b.WriteString("Eres un asesor financiero. Responde de forma breve y concreta a la pregunta del usuario ")
	b.WriteString("sobre la siguiente cartera de empresas (importes en una única divisa).\n\n")
	fmt.Fprintf(&b, "Cartera: %s\n\n", data)
	fmt.Fprintf(&b, "Pregunta: %s\n", question)
	return b.String()
}
