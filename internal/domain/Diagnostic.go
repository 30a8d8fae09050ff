package domain

import (
	"time"
)

// DiagnosticType identifica a categoria de um diagnóstico
type DiagnosticType string

const (
	DiagnosticFatigue               DiagnosticType = "fatigue"
	DiagnosticSaturation            DiagnosticType = "saturation"
	DiagnosticDeliveryConcentration DiagnosticType = "delivery_concentration"
	DiagnosticAuctionShifts         DiagnosticType = "auction_shifts"
	DiagnosticTrackingDegradation   DiagnosticType = "tracking_degradation"
)

// ParseDiagnosticType converte a string de uma categoria, validando contra as
// categorias conhecidas
func ParseDiagnosticType(value string) (DiagnosticType, bool) {
	switch DiagnosticType(value) {
	case DiagnosticFatigue, DiagnosticSaturation, DiagnosticDeliveryConcentration,
		DiagnosticAuctionShifts, DiagnosticTrackingDegradation:
		return DiagnosticType(value), true
	}
	return "", false
}

// Severity é a classificação em três níveis da magnitude de um diagnóstico
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// MaxConfidence é o teto do score de confiança de qualquer diagnóstico
const MaxConfidence = 0.95

// DiagnosticResult representa um achado derivado sobre uma categoria de
// anomalia de performance. Registros são imutáveis após a criação
// (histórico append-only).
type DiagnosticResult struct {
	ID   int64          `json:"id"`
	Date time.Time      `json:"date"`
	Type DiagnosticType `json:"diagnostic_type"`

	MetricName       string   `json:"metric_name"`
	CurrentValue     float64  `json:"current_value"`
	PreviousValue    *float64 `json:"previous_value,omitempty"`
	ChangePercentage *float64 `json:"change_percentage,omitempty"`

	Severity   Severity `json:"severity"`
	Confidence float64  `json:"confidence"`

	Explanation    string `json:"explanation"`
	Recommendation string `json:"recommendation"`

	// Valores auxiliares para auditoria; nunca participam da severidade
	Metadata map[string]any `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
