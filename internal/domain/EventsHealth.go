package domain

import (
	"time"
)

// EventsHealth representa o snapshot diário de saúde do Events Manager (pixel)
type EventsHealth struct {
	ID      int64     `json:"id"`
	Date    time.Time `json:"date"`
	PixelID *string   `json:"pixel_id"`

	EventsReceived  int `json:"events_received"`
	EventsDropped   int `json:"events_dropped"`
	EventsDuplicate int `json:"events_duplicate"`
	EventsMatched   int `json:"events_matched"`

	// QualityScore = matched/received, limitado a [0,1]; 0 quando received = 0
	QualityScore float64 `json:"tracking_quality_score"`

	// Taxas auxiliares calculadas na coleta (match/drop/duplicate)
	Diagnostics map[string]float64 `json:"diagnostics,omitempty"`
	RawData     map[string]any     `json:"raw_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ComputeQualityScore calcula o score de qualidade de rastreamento
func ComputeQualityScore(received, matched int) float64 {
	if received <= 0 {
		return 0
	}

	score := float64(matched) / float64(received)
	if score > 1 {
		score = 1
	}

	return score
}
