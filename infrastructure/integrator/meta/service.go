package meta

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-analyst-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-analyst-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-analyst-api/internal/config"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
	"github.com/vfg2006/ad-analyst-api/pkg/utils"
)

// incrementalAttributionWindows são as janelas longas usadas na leitura
// incremental de atribuição
var incrementalAttributionWindows = []string{"28d_click", "28d_view"}

type Integrator interface {
	GetAccountSnapshot(date time.Time) (*domain.AccountSnapshot, error)
	GetCampaignBreakdown(since, until time.Time) ([]*domain.CampaignBreakdownEntry, error)
	GetEventsHealth(date time.Time) (*domain.EventsHealth, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountSnapshot monta o snapshot de métricas da conta para a data
// informada, cobrindo o dia anterior até a data. A leitura incremental de
// atribuição é opcional: falha nela não derruba o snapshot.
func (s *MetaIntegrator) GetAccountSnapshot(date time.Time) (*domain.AccountSnapshot, error) {
	accountID := s.cfg.Meta.AdAccountID
	since := date.AddDate(0, 0, -1)

	insight, err := s.Client.GetAccountInsights(accountID, since, date, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("snapshot: failed to get account insights from API")
		return nil, err
	}

	snapshot, err := FactoryAccountSnapshot(accountID, date, insight)
	if err != nil {
		logrus.WithField("account_id", accountID).Error("snapshot: failed to convert account metrics")
		return nil, err
	}

	incremental, err := s.Client.GetAccountInsights(accountID, since, date, incrementalAttributionWindows)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("snapshot: incremental attribution not available")
	} else {
		snapshot.IncrementalAttribution = insightToMap(incremental)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"date":       date.Format(time.DateOnly),
	}).Debug("snapshot: successfully retrieved account metrics")

	return snapshot, nil
}

// GetCampaignBreakdown retorna as métricas por campanha no intervalo
// [since, until]. Campanhas com métricas inválidas são ignoradas.
func (s *MetaIntegrator) GetCampaignBreakdown(since, until time.Time) ([]*domain.CampaignBreakdownEntry, error) {
	accountID := s.cfg.Meta.AdAccountID

	insights, err := s.Client.GetCampaignInsights(accountID, since, until)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("breakdown: failed to get campaign insights from API")
		return nil, err
	}

	entries := make([]*domain.CampaignBreakdownEntry, 0, len(insights))
	for _, insight := range insights {
		entry, err := FactoryCampaignBreakdown(&insight)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": insight.CampaignID,
				"error":       err.Error(),
			}).Warn("breakdown: skipping campaign with invalid metrics")
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetEventsHealth agrega as leituras de processamento de eventos de todos os
// pixels da conta na data informada. Sem pixels retorna (nil, nil).
func (s *MetaIntegrator) GetEventsHealth(date time.Time) (*domain.EventsHealth, error) {
	accountID := s.cfg.Meta.AdAccountID

	pixels, err := s.Client.GetAdsPixels(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("events: failed to list ads pixels from API")
		return nil, err
	}

	if len(pixels) == 0 {
		logrus.WithField("account_id", accountID).Warn("events: no pixels found for account")
		return nil, nil
	}

	var totalReceived, totalDropped, totalDuplicate, totalMatched int
	pixelsRaw := make([]map[string]any, 0, len(pixels))

	for _, pixel := range pixels {
		stats, err := s.Client.GetPixelStats(pixel.ID, date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"pixel_id": pixel.ID,
				"error":    err.Error(),
			}).Warn("events: could not fetch stats for pixel")
			continue
		}

		for _, stat := range stats {
			totalReceived += stat.EventsReceived
			totalDropped += stat.EventsDropped
			totalDuplicate += stat.EventsDuplicate
			totalMatched += stat.EventsMatched
		}

		pixelsRaw = append(pixelsRaw, map[string]any{
			"pixel_id":   pixel.ID,
			"pixel_name": pixel.Name,
			"stats":      len(stats),
		})
	}

	health := &domain.EventsHealth{
		Date:            date,
		PixelID:         &pixels[0].ID,
		EventsReceived:  totalReceived,
		EventsDropped:   totalDropped,
		EventsDuplicate: totalDuplicate,
		EventsMatched:   totalMatched,
		QualityScore:    domain.ComputeQualityScore(totalReceived, totalMatched),
		Diagnostics:     eventRates(totalReceived, totalDropped, totalDuplicate, totalMatched),
		RawData: map[string]any{
			"total_pixels": len(pixels),
			"pixels":       pixelsRaw,
		},
	}

	return health, nil
}

func eventRates(received, dropped, duplicate, matched int) map[string]float64 {
	rates := map[string]float64{
		"match_rate":     0,
		"drop_rate":      0,
		"duplicate_rate": 0,
	}

	if received > 0 {
		rates["match_rate"] = utils.RoundWithTwoDecimalPlace(float64(matched) / float64(received))
		rates["drop_rate"] = utils.RoundWithTwoDecimalPlace(float64(dropped) / float64(received))
		rates["duplicate_rate"] = utils.RoundWithTwoDecimalPlace(float64(duplicate) / float64(received))
	}

	return rates
}

// FactoryAccountSnapshot converte o insight da API em um snapshot do domínio
func FactoryAccountSnapshot(accountID string, date time.Time, insight *metadomain.AccountInsight) (*domain.AccountSnapshot, error) {
	spend, err := parseRequiredFloat(insight.Spend, "spend")
	if err != nil {
		return nil, err
	}

	frequency, err := parseRequiredFloat(insight.Frequency, "frequency")
	if err != nil {
		return nil, err
	}

	impressions, err := parseRequiredInt(insight.Impressions, "impressions")
	if err != nil {
		return nil, err
	}

	clicks, err := parseRequiredInt(insight.Clicks, "clicks")
	if err != nil {
		return nil, err
	}

	reach, err := parseRequiredInt(insight.Reach, "reach")
	if err != nil {
		return nil, err
	}

	raw := insightToMap(insight)

	return &domain.AccountSnapshot{
		AccountID:           accountID,
		Date:                date,
		Spend:               spend,
		Impressions:         impressions,
		Clicks:              clicks,
		Reach:               reach,
		Frequency:           frequency,
		CPM:                 parseOptionalFloat(insight.CPM),
		CPC:                 parseOptionalFloat(insight.CPC),
		CTR:                 parseOptionalFloat(insight.CTR),
		StandardAttribution: raw,
		RawData:             raw,
	}, nil
}

// FactoryCampaignBreakdown converte o insight de campanha em uma entrada do
// breakdown do domínio
func FactoryCampaignBreakdown(insight *metadomain.CampaignInsight) (*domain.CampaignBreakdownEntry, error) {
	spend, err := parseRequiredFloat(insight.Spend, "spend")
	if err != nil {
		return nil, err
	}

	frequency, err := parseRequiredFloat(insight.Frequency, "frequency")
	if err != nil {
		return nil, err
	}

	impressions, err := parseRequiredInt(insight.Impressions, "impressions")
	if err != nil {
		return nil, err
	}

	clicks, err := parseRequiredInt(insight.Clicks, "clicks")
	if err != nil {
		return nil, err
	}

	reach, err := parseRequiredInt(insight.Reach, "reach")
	if err != nil {
		return nil, err
	}

	return &domain.CampaignBreakdownEntry{
		CampaignID:   insight.CampaignID,
		CampaignName: insight.CampaignName,
		Spend:        spend,
		Impressions:  impressions,
		Clicks:       clicks,
		Reach:        reach,
		Frequency:    frequency,
		CPM:          parseOptionalFloat(insight.CPM),
		CPC:          parseOptionalFloat(insight.CPC),
		CTR:          parseOptionalFloat(insight.CTR),
	}, nil
}

func parseRequiredFloat(value, field string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("erro ao converter %s: %w", field, err)
	}

	return parsed, nil
}

func parseRequiredInt(value, field string) (int, error) {
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("erro ao converter %s: %w", field, err)
	}

	return parsed, nil
}

func parseOptionalFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &parsed
}

// insightToMap preserva o payload bruto do insight para auditoria
func insightToMap(insight *metadomain.AccountInsight) map[string]any {
	data, err := json.Marshal(insight)
	if err != nil {
		return nil
	}

	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	return raw
}
