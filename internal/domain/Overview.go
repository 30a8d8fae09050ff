package domain

import (
	"time"
)

// KeyChange descreve uma mudança relevante no dia, na forma gerada pelo modelo
type KeyChange struct {
	Metric      string `json:"metric"`
	Change      string `json:"change"`
	Explanation string `json:"explanation"`
}

// Insight descreve uma conclusão baseada em evidências
type Insight struct {
	Insight    string  `json:"insight"`
	Evidence   string  `json:"evidence"`
	Confidence float64 `json:"confidence"`
}

// Recommendation descreve uma ação sugerida (somente leitura)
type Recommendation struct {
	Recommendation string  `json:"recommendation"`
	Rationale      string  `json:"rationale"`
	Confidence     float64 `json:"confidence"`
}

// DailyOverview é o resumo diário gerado pelo modelo e cacheado por data.
// Existe no máximo um registro por data; a geração é idempotente.
type DailyOverview struct {
	ID   int64     `json:"id"`
	Date time.Time `json:"overview_date"`

	Summary         string           `json:"summary"`
	KeyChanges      []KeyChange      `json:"key_changes"`
	Insights        []Insight        `json:"insights"`
	Recommendations []Recommendation `json:"recommendations"`

	GeneratedAt time.Time `json:"generated_at"`
}

// AnswerResult é a resposta de uma pergunta ad-hoc sobre a conta
type AnswerResult struct {
	Answer      string         `json:"answer"`
	ContextUsed *ContextBundle `json:"context_used"`
	Model       string         `json:"model,omitempty"`
}
