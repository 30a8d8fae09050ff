package diagnosing

import (
	"time"

	"github.com/vfg2006/ad-analyst-api/internal/domain"
)

// CampaignInsighter define a interface para obter o breakdown de métricas
// por campanha direto da API do Meta
type CampaignInsighter interface {
	GetCampaignBreakdown(since, until time.Time) ([]*domain.CampaignBreakdownEntry, error)
}

// Diagnoser computa os diagnósticos determinísticos de performance de uma
// conta. Cada método retorna (nil, nil) quando não há dados suficientes
// para uma leitura honesta da categoria.
type Diagnoser interface {
	ComputeFatigue(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error)
	ComputeSaturation(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error)
	ComputeDeliveryConcentration(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error)
	ComputeAuctionShifts(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error)
	ComputeTrackingDegradation(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error)

	// ComputeAllDiagnostics roda todas as categorias com isolamento de
	// falhas: o erro de uma categoria não impede as demais
	ComputeAllDiagnostics(snapshot *domain.AccountSnapshot) []*domain.DiagnosticResult

	// GetDiagnosticHistory consulta os diagnósticos persistidos. Com data
	// informada, volta apenas os daquela data; sem data, os mais recentes
	GetDiagnosticHistory(date *time.Time, diagnosticType *domain.DiagnosticType, limit int) ([]*domain.DiagnosticResult, error)
}
