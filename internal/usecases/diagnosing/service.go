package diagnosing

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analyst-api/infrastructure/repository"
	"github.com/vfg2006/ad-analyst-api/internal/config"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
)

// Mínimos de amostras para cada categoria emitir um resultado
const (
	minTrendSamples  = 3
	minCampaigns     = 2
	minCPMSamples    = 2
	minHealthSamples = 2
)

// Service implementa a interface Diagnoser
type Service struct {
	cfg                    *config.Config
	snapshotRepository     repository.SnapshotRepository
	eventsHealthRepository repository.EventsHealthRepository
	diagnosticRepository   repository.DiagnosticRepository
	metaService            CampaignInsighter
}

// NewService cria uma nova instância do motor de diagnósticos
func NewService(
	cfg *config.Config,
	snapshotRepo repository.SnapshotRepository,
	eventsHealthRepo repository.EventsHealthRepository,
	diagnosticRepo repository.DiagnosticRepository,
	metaService CampaignInsighter,
) Diagnoser {
	return &Service{
		cfg:                    cfg,
		snapshotRepository:     snapshotRepo,
		eventsHealthRepository: eventsHealthRepo,
		diagnosticRepository:   diagnosticRepo,
		metaService:            metaService,
	}
}

// ComputeFatigue avalia fadiga de anúncio pela tendência de frequência.
// Frequência subindo demais significa a mesma audiência vendo os mesmos
// anúncios repetidamente.
func (s *Service) ComputeFatigue(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error) {
	window, err := s.trailingWindow(snapshot)
	if err != nil {
		return nil, err
	}

	if len(window) < minTrendSamples {
		return nil, nil
	}

	var sum float64
	for _, past := range window {
		sum += past.Frequency
	}
	avgFrequency := sum / float64(len(window))

	if avgFrequency == 0 {
		return nil, nil
	}

	increase := ((snapshot.Frequency - avgFrequency) / avgFrequency) * 100

	severity := domain.SeverityLow
	if increase > s.cfg.Diagnostics.FatigueHighPct {
		severity = domain.SeverityHigh
	} else if increase > s.cfg.Diagnostics.FatigueMediumPct {
		severity = domain.SeverityMedium
	}

	days := s.cfg.Diagnostics.WindowDays

	explanation := fmt.Sprintf(
		"Frequency increased by %.1f%% compared to %d-day average. Current frequency: %.2f, %d-day average: %.2f.",
		increase, days, snapshot.Frequency, days, avgFrequency,
	)

	recommendation := "Consider refreshing creative assets or adjusting audience targeting to reduce ad fatigue."
	if severity == domain.SeverityHigh {
		recommendation = "High ad fatigue detected. Urgent action recommended: refresh creatives, expand audiences, or reduce frequency caps."
	}

	return &domain.DiagnosticResult{
		Date:             snapshot.Date,
		Type:             domain.DiagnosticFatigue,
		MetricName:       "frequency",
		CurrentValue:     snapshot.Frequency,
		PreviousValue:    &avgFrequency,
		ChangePercentage: &increase,
		Severity:         severity,
		Confidence:       confidenceScore(0.6, len(window)),
		Explanation:      explanation,
		Recommendation:   recommendation,
		Metadata: map[string]any{
			"snapshots_analyzed": len(window),
		},
	}, nil
}

// ComputeSaturation avalia saturação de mercado pela eficiência de alcance.
// Alcance por unidade monetária caindo indica audiência esgotada.
func (s *Service) ComputeSaturation(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error) {
	window, err := s.trailingWindow(snapshot)
	if err != nil {
		return nil, err
	}

	if len(window) < minTrendSamples {
		return nil, nil
	}

	var sumReach, sumSpend float64
	for _, past := range window {
		sumReach += float64(past.Reach)
		sumSpend += past.Spend
	}
	avgReach := sumReach / float64(len(window))
	avgSpend := sumSpend / float64(len(window))

	if avgReach == 0 || avgSpend == 0 {
		return nil, nil
	}

	reachChange := ((float64(snapshot.Reach) - avgReach) / avgReach) * 100
	spendChange := ((snapshot.Spend - avgSpend) / avgSpend) * 100

	var reachPerDollar float64
	if snapshot.Spend > 0 {
		reachPerDollar = float64(snapshot.Reach) / snapshot.Spend
	}
	avgReachPerDollar := avgReach / avgSpend

	var efficiencyDecline float64
	if avgReachPerDollar > 0 {
		efficiencyDecline = ((reachPerDollar - avgReachPerDollar) / avgReachPerDollar) * 100
	}

	severity := domain.SeverityLow
	if efficiencyDecline < s.cfg.Diagnostics.SaturationHighPct {
		severity = domain.SeverityHigh
	} else if efficiencyDecline < s.cfg.Diagnostics.SaturationMediumPct {
		severity = domain.SeverityMedium
	}

	days := s.cfg.Diagnostics.WindowDays

	explanation := fmt.Sprintf(
		"Reach efficiency declined by %.1f%%. Current reach per dollar: $%.2f, %d-day average: $%.2f.",
		math.Abs(efficiencyDecline), reachPerDollar, days, avgReachPerDollar,
	)

	recommendation := "Market may be reaching saturation. Consider testing new audiences, expanding to new placements, or adjusting bid strategies."
	if severity == domain.SeverityHigh {
		recommendation = "High saturation detected. Consider significant audience expansion, new creative angles, or exploring new markets/placements."
	}

	return &domain.DiagnosticResult{
		Date:             snapshot.Date,
		Type:             domain.DiagnosticSaturation,
		MetricName:       "reach_efficiency",
		CurrentValue:     reachPerDollar,
		PreviousValue:    &avgReachPerDollar,
		ChangePercentage: &efficiencyDecline,
		Severity:         severity,
		Confidence:       confidenceScore(0.65, len(window)),
		Explanation:      explanation,
		Recommendation:   recommendation,
		Metadata: map[string]any{
			"reach_change":       reachChange,
			"spend_change":       spendChange,
			"snapshots_analyzed": len(window),
		},
	}, nil
}

// ComputeDeliveryConcentration avalia o quanto o investimento do dia está
// concentrado em poucas campanhas. Usa a participação da maior campanha e o
// índice de Herfindahl sobre as participações.
func (s *Service) ComputeDeliveryConcentration(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error) {
	since := snapshot.Date.AddDate(0, 0, -1)

	campaigns, err := s.metaService.GetCampaignBreakdown(since, snapshot.Date)
	if err != nil {
		return nil, err
	}

	if len(campaigns) < minCampaigns {
		return nil, nil
	}

	var totalSpend float64
	for _, campaign := range campaigns {
		totalSpend += campaign.Spend
	}

	if totalSpend == 0 {
		return nil, nil
	}

	var herfindahlIndex, concentrationRatio float64
	for _, campaign := range campaigns {
		share := campaign.Spend / totalSpend
		herfindahlIndex += share * share
		if share > concentrationRatio {
			concentrationRatio = share
		}
	}

	severity := domain.SeverityLow
	if concentrationRatio > s.cfg.Diagnostics.ConcentrationHighRatio || herfindahlIndex > s.cfg.Diagnostics.ConcentrationHighHHI {
		severity = domain.SeverityHigh
	} else if concentrationRatio > s.cfg.Diagnostics.ConcentrationMediumRatio || herfindahlIndex > s.cfg.Diagnostics.ConcentrationMediumHHI {
		severity = domain.SeverityMedium
	}

	explanation := fmt.Sprintf(
		"Spend concentration: %.1f%% in top campaign. Herfindahl index: %.3f (higher = more concentrated).",
		concentrationRatio*100, herfindahlIndex,
	)

	recommendation := "High delivery concentration detected. Consider diversifying spend across more campaigns to reduce risk."
	if severity == domain.SeverityLow {
		recommendation = "Delivery is well-distributed across campaigns."
	}

	return &domain.DiagnosticResult{
		Date:           snapshot.Date,
		Type:           domain.DiagnosticDeliveryConcentration,
		MetricName:     "concentration_ratio",
		CurrentValue:   concentrationRatio,
		Severity:       severity,
		Confidence:     0.8,
		Explanation:    explanation,
		Recommendation: recommendation,
		Metadata: map[string]any{
			"herfindahl_index":         herfindahlIndex,
			"total_campaigns":          len(campaigns),
			"top_campaign_spend_share": concentrationRatio,
		},
	}, nil
}

// ComputeAuctionShifts avalia mudanças de leilão pelo CPM: desvio em relação
// à média da janela e volatilidade dentro dela
func (s *Service) ComputeAuctionShifts(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error) {
	window, err := s.trailingWindow(snapshot)
	if err != nil {
		return nil, err
	}

	if len(window) < minTrendSamples {
		return nil, nil
	}

	if snapshot.CPM == nil {
		return nil, nil
	}
	recentCPM := *snapshot.CPM

	cpmValues := make([]float64, 0, len(window))
	for _, past := range window {
		if past.CPM != nil {
			cpmValues = append(cpmValues, *past.CPM)
		}
	}

	if len(cpmValues) < minCPMSamples {
		return nil, nil
	}

	var sum float64
	for _, value := range cpmValues {
		sum += value
	}
	avgCPM := sum / float64(len(cpmValues))

	var cpmChange, cpmVolatility float64
	if avgCPM > 0 {
		cpmChange = ((recentCPM - avgCPM) / avgCPM) * 100
		cpmVolatility = (stddev(cpmValues) / avgCPM) * 100
	}

	severity := domain.SeverityLow
	if math.Abs(cpmChange) > s.cfg.Diagnostics.AuctionHighChangePct || cpmVolatility > s.cfg.Diagnostics.AuctionHighVolatilityPct {
		severity = domain.SeverityHigh
	} else if math.Abs(cpmChange) > s.cfg.Diagnostics.AuctionMediumChangePct || cpmVolatility > s.cfg.Diagnostics.AuctionMediumVolatilityPct {
		severity = domain.SeverityMedium
	}

	days := s.cfg.Diagnostics.WindowDays

	explanation := fmt.Sprintf(
		"CPM changed by %.1f%% vs %d-day average. Current CPM: $%.2f, %d-day average: $%.2f. Volatility: %.1f%%.",
		cpmChange, days, recentCPM, days, avgCPM, cpmVolatility,
	)

	recommendation := "Significant auction shifts detected. Monitor competitive landscape and consider bid adjustments."
	if severity == domain.SeverityLow {
		recommendation = "Auction dynamics are relatively stable."
	}

	return &domain.DiagnosticResult{
		Date:             snapshot.Date,
		Type:             domain.DiagnosticAuctionShifts,
		MetricName:       "cpm",
		CurrentValue:     recentCPM,
		PreviousValue:    &avgCPM,
		ChangePercentage: &cpmChange,
		Severity:         severity,
		Confidence:       confidenceScore(0.7, len(cpmValues)),
		Explanation:      explanation,
		Recommendation:   recommendation,
		Metadata: map[string]any{
			"cpm_volatility":     cpmVolatility,
			"snapshots_analyzed": len(cpmValues),
		},
	}, nil
}

// ComputeTrackingDegradation avalia a queda do score de qualidade de
// rastreamento em relação à média da janela
func (s *Service) ComputeTrackingDegradation(snapshot *domain.AccountSnapshot) (*domain.DiagnosticResult, error) {
	recentHealth, err := s.eventsHealthRepository.GetMostRecentBetween(snapshot.Date.AddDate(0, 0, -1), snapshot.Date)
	if err != nil {
		return nil, err
	}

	if recentHealth == nil {
		return nil, nil
	}

	days := s.cfg.Diagnostics.WindowDays
	start := snapshot.Date.AddDate(0, 0, -days)

	historical, err := s.eventsHealthRepository.GetWindow(start, snapshot.Date, days)
	if err != nil {
		return nil, err
	}

	if len(historical) < minHealthSamples {
		return nil, nil
	}

	var sum float64
	for _, past := range historical {
		sum += past.QualityScore
	}
	avgScore := sum / float64(len(historical))

	recentScore := recentHealth.QualityScore
	decline := avgScore - recentScore
	changePercentage := -decline * 100

	severity := domain.SeverityLow
	if decline > s.cfg.Diagnostics.TrackingHighDecline {
		severity = domain.SeverityHigh
	} else if decline > s.cfg.Diagnostics.TrackingMediumDecline {
		severity = domain.SeverityMedium
	}

	explanation := fmt.Sprintf(
		"Tracking quality score declined by %.3f. Current score: %.3f, %d-day average: %.3f.",
		decline, recentScore, days, avgScore,
	)

	recommendation := "Tracking degradation detected. Review Events Manager setup, check for iOS 14.5+ impacts, verify pixel implementation."
	if severity == domain.SeverityHigh {
		recommendation = "Significant tracking degradation. Urgent review of tracking setup required. Check pixel health, iOS attribution, and server-side tracking."
	}

	return &domain.DiagnosticResult{
		Date:             snapshot.Date,
		Type:             domain.DiagnosticTrackingDegradation,
		MetricName:       "tracking_quality_score",
		CurrentValue:     recentScore,
		PreviousValue:    &avgScore,
		ChangePercentage: &changePercentage,
		Severity:         severity,
		Confidence:       0.85,
		Explanation:      explanation,
		Recommendation:   recommendation,
		Metadata: map[string]any{
			"events_received":    recentHealth.EventsReceived,
			"events_dropped":     recentHealth.EventsDropped,
			"snapshots_analyzed": len(historical),
		},
	}, nil
}

// ComputeAllDiagnostics roda todas as categorias para o snapshot. Categorias
// sem dados suficientes são omitidas; categorias com erro são logadas e
// omitidas, sem derrubar as demais.
func (s *Service) ComputeAllDiagnostics(snapshot *domain.AccountSnapshot) []*domain.DiagnosticResult {
	computations := []struct {
		diagnosticType domain.DiagnosticType
		compute        func(*domain.AccountSnapshot) (*domain.DiagnosticResult, error)
	}{
		{domain.DiagnosticFatigue, s.ComputeFatigue},
		{domain.DiagnosticSaturation, s.ComputeSaturation},
		{domain.DiagnosticDeliveryConcentration, s.ComputeDeliveryConcentration},
		{domain.DiagnosticAuctionShifts, s.ComputeAuctionShifts},
		{domain.DiagnosticTrackingDegradation, s.ComputeTrackingDegradation},
	}

	results := make([]*domain.DiagnosticResult, 0, len(computations))
	for _, computation := range computations {
		result, err := computation.compute(snapshot)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"diagnostic_type": computation.diagnosticType,
				"date":            snapshot.Date.Format("2006-01-02"),
				"error":           err.Error(),
			}).Error("diagnostics: failed to compute diagnostic")
			continue
		}

		if result != nil {
			results = append(results, result)
		}
	}

	return results
}

// GetDiagnosticHistory consulta os diagnósticos persistidos, filtrando por
// tipo quando informado
func (s *Service) GetDiagnosticHistory(date *time.Time, diagnosticType *domain.DiagnosticType, limit int) ([]*domain.DiagnosticResult, error) {
	if date == nil {
		return s.diagnosticRepository.ListRecent(time.Now(), diagnosticType, limit)
	}

	results, err := s.diagnosticRepository.GetByDate(*date)
	if err != nil {
		return nil, err
	}

	if diagnosticType == nil {
		return results, nil
	}

	filtered := make([]*domain.DiagnosticResult, 0, len(results))
	for _, result := range results {
		if result.Type == *diagnosticType {
			filtered = append(filtered, result)
		}
	}

	return filtered, nil
}

// trailingWindow carrega os snapshots da janela [date-N, date), do mais
// recente para o mais antigo, limitado a N registros
func (s *Service) trailingWindow(snapshot *domain.AccountSnapshot) ([]*domain.AccountSnapshot, error) {
	days := s.cfg.Diagnostics.WindowDays
	start := snapshot.Date.AddDate(0, 0, -days)

	return s.snapshotRepository.GetWindow(snapshot.AccountID, start, snapshot.Date, days)
}

// confidenceScore cresce com o número de amostras, limitado ao teto do domínio
func confidenceScore(base float64, samples int) float64 {
	return math.Min(domain.MaxConfidence, base+float64(samples)/10)
}

// stddev é o desvio padrão populacional
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var sum float64
	for _, value := range values {
		sum += value
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, value := range values {
		deviation := value - mean
		variance += deviation * deviation
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}
