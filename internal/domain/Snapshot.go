package domain

import (
	"time"
)

// AccountSnapshot representa o snapshot diário de métricas de uma conta de anúncios
type AccountSnapshot struct {
	ID        int64     `json:"id"`
	AccountID string    `json:"account_id"`
	Date      time.Time `json:"date"`

	// Métricas principais do dia
	Spend       float64  `json:"spend"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Reach       int      `json:"reach"`
	Frequency   float64  `json:"frequency"`
	CPM         *float64 `json:"cpm"`
	CPC         *float64 `json:"cpc"`
	CTR         *float64 `json:"ctr"`

	// Dados de atribuição retornados pela API (armazenados como JSON opaco)
	StandardAttribution    map[string]any `json:"standard_attribution,omitempty"`
	IncrementalAttribution map[string]any `json:"incremental_attribution,omitempty"`
	RawData                map[string]any `json:"raw_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// CampaignBreakdownEntry representa as métricas de uma campanha individual,
// usadas no diagnóstico de concentração de entrega
type CampaignBreakdownEntry struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Spend        float64  `json:"spend"`
	Impressions  int      `json:"impressions"`
	Clicks       int      `json:"clicks"`
	Reach        int      `json:"reach"`
	Frequency    float64  `json:"frequency"`
	CPM          *float64 `json:"cpm"`
	CPC          *float64 `json:"cpc"`
	CTR          *float64 `json:"ctr"`
}
