package domain

// SnapshotContext é a projeção pública de um snapshot dentro do bundle de
// contexto enviado ao modelo (sem blobs de atribuição nem dados brutos)
type SnapshotContext struct {
	Date        string   `json:"date"`
	Spend       float64  `json:"spend"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Reach       int      `json:"reach"`
	Frequency   float64  `json:"frequency"`
	CPM         *float64 `json:"cpm"`
	CPC         *float64 `json:"cpc"`
	CTR         *float64 `json:"ctr"`
}

// ChangesContext são as variações dia-a-dia calculadas quando existe um
// snapshot anterior com spend > 0
type ChangesContext struct {
	SpendChange       float64  `json:"spend_change"`
	ImpressionsChange float64  `json:"impressions_change"`
	ClicksChange      float64  `json:"clicks_change"`
	CPMChange         *float64 `json:"cpm_change"`
}

// DiagnosticContext é a projeção pública de um diagnóstico (sem metadata)
type DiagnosticContext struct {
	Type             DiagnosticType `json:"type"`
	Metric           string         `json:"metric"`
	Severity         Severity       `json:"severity"`
	Confidence       float64        `json:"confidence"`
	Explanation      string         `json:"explanation"`
	Recommendation   string         `json:"recommendation"`
	ChangePercentage *float64       `json:"change_percentage"`
}

// EventsHealthContext é a projeção pública da saúde do Events Manager
type EventsHealthContext struct {
	TrackingQualityScore float64 `json:"tracking_quality_score"`
	EventsReceived       int     `json:"events_received"`
	EventsDropped        int     `json:"events_dropped"`
	EventsMatched        int     `json:"events_matched"`
}

// ContextBundle é o pacote somente-leitura de dados entregue ao modelo de
// linguagem. Contém apenas o que existe no banco: nenhum campo é inventado
// além das guardas de zero explícitas no cálculo de changes.
type ContextBundle struct {
	CurrentSnapshot  *SnapshotContext     `json:"current_snapshot,omitempty"`
	PreviousSnapshot *SnapshotContext     `json:"previous_snapshot"`
	Changes          *ChangesContext      `json:"changes,omitempty"`
	HistoricalData   []SnapshotContext    `json:"historical_data"`
	Diagnostics      []DiagnosticContext  `json:"diagnostics"`
	EventsHealth     *EventsHealthContext `json:"events_health"`
}

// IsEmpty indica que nenhum snapshot âncora foi encontrado para a data
func (b *ContextBundle) IsEmpty() bool {
	return b == nil || b.CurrentSnapshot == nil
}

// NewSnapshotContext projeta um AccountSnapshot na forma pública do bundle
func NewSnapshotContext(s *AccountSnapshot) *SnapshotContext {
	if s == nil {
		return nil
	}

	return &SnapshotContext{
		Date:        s.Date.Format("2006-01-02"),
		Spend:       s.Spend,
		Impressions: s.Impressions,
		Clicks:      s.Clicks,
		Reach:       s.Reach,
		Frequency:   s.Frequency,
		CPM:         s.CPM,
		CPC:         s.CPC,
		CTR:         s.CTR,
	}
}
