package diagnosing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metamocks "github.com/vfg2006/ad-analyst-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-analyst-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-analyst-api/internal/config"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Diagnostics: config.Diagnostics{
			WindowDays:                 7,
			FatigueHighPct:             30,
			FatigueMediumPct:           15,
			SaturationHighPct:          -20,
			SaturationMediumPct:        -10,
			ConcentrationHighRatio:     0.7,
			ConcentrationMediumRatio:   0.5,
			ConcentrationHighHHI:       0.5,
			ConcentrationMediumHHI:     0.3,
			AuctionHighChangePct:       25,
			AuctionMediumChangePct:     15,
			AuctionHighVolatilityPct:   20,
			AuctionMediumVolatilityPct: 15,
			TrackingHighDecline:        0.15,
			TrackingMediumDecline:      0.08,
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func snapshotsWithFrequencies(frequencies ...float64) []*domain.AccountSnapshot {
	snapshots := make([]*domain.AccountSnapshot, 0, len(frequencies))
	for _, frequency := range frequencies {
		snapshots = append(snapshots, &domain.AccountSnapshot{
			AccountID: "123",
			Frequency: frequency,
			Spend:     100,
			Reach:     1000,
		})
	}
	return snapshots
}

func TestService_ComputeFatigue(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	windowStart := date.AddDate(0, 0, -7)

	current := &domain.AccountSnapshot{
		AccountID: "123",
		Date:      date,
		Frequency: 2.6,
	}

	tests := []struct {
		name     string
		window   []*domain.AccountSnapshot
		validate func(t *testing.T, result *domain.DiagnosticResult)
	}{
		{
			name:   "Janela com menos de 3 snapshots - sem resultado",
			window: snapshotsWithFrequencies(2.0, 2.1),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:   "Media de frequencia zero - sem resultado",
			window: snapshotsWithFrequencies(0, 0, 0),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:   "Aumento acima do limiar alto com janela cheia",
			window: snapshotsWithFrequencies(2.0, 2.1, 1.9, 1.93, 2.05, 1.95, 2.0),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.DiagnosticFatigue, result.Type)
				assert.Equal(t, "frequency", result.MetricName)
				assert.Equal(t, domain.SeverityHigh, result.Severity)
				assert.Equal(t, 2.6, result.CurrentValue)
				assert.InDelta(t, 1.99, *result.PreviousValue, 0.001)
				assert.InDelta(t, 30.65, *result.ChangePercentage, 0.05)
				// 7 amostras: 0.6 + 0.7 estoura o teto de 0.95
				assert.Equal(t, domain.MaxConfidence, result.Confidence)
				assert.Equal(t, 7, result.Metadata["snapshots_analyzed"])
			},
		},
		{
			// 2.6 sobre media 2.0: o ruido de ponto flutuante deixa a
			// variacao um fio acima de 30, entao a severidade e alta
			name:   "Aumento no limiar configurado - severidade alta",
			window: snapshotsWithFrequencies(2.0, 2.0, 2.0, 2.0),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.SeverityHigh, result.Severity)
				assert.InDelta(t, 30.0, *result.ChangePercentage, 0.01)
			},
		},
		{
			name:   "Frequencia estavel - severidade baixa",
			window: snapshotsWithFrequencies(2.6, 2.6, 2.6),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.SeverityLow, result.Severity)
				assert.InDelta(t, 0.0, *result.ChangePercentage, 0.0001)
				// 3 amostras: 0.6 + 0.3
				assert.InDelta(t, 0.9, result.Confidence, 0.0001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
			mockSnapshotRepo.EXPECT().
				GetWindow("123", windowStart, date, 7).
				Return(tt.window, nil)

			service := &Service{
				cfg:                testConfig(),
				snapshotRepository: mockSnapshotRepo,
			}

			result, err := service.ComputeFatigue(current)

			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_ComputeFatigue_AumentoModeradoExato(t *testing.T) {
	// Caso com media exata: 2.4 sobre media 2.0 fica entre os limiares
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().
		GetWindow("123", date.AddDate(0, 0, -7), date, 7).
		Return(snapshotsWithFrequencies(2.0, 2.0, 2.0, 2.0), nil)

	service := &Service{
		cfg:                testConfig(),
		snapshotRepository: mockSnapshotRepo,
	}

	current := &domain.AccountSnapshot{AccountID: "123", Date: date, Frequency: 2.4}

	result, err := service.ComputeFatigue(current)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, domain.SeverityMedium, result.Severity)
	assert.InDelta(t, 20.0, *result.ChangePercentage, 0.01)
}

func TestService_ComputeSaturation(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	windowStart := date.AddDate(0, 0, -7)

	historical := func(reach int, spend float64, count int) []*domain.AccountSnapshot {
		snapshots := make([]*domain.AccountSnapshot, 0, count)
		for i := 0; i < count; i++ {
			snapshots = append(snapshots, &domain.AccountSnapshot{
				AccountID: "123",
				Reach:     reach,
				Spend:     spend,
			})
		}
		return snapshots
	}

	tests := []struct {
		name     string
		current  *domain.AccountSnapshot
		window   []*domain.AccountSnapshot
		validate func(t *testing.T, result *domain.DiagnosticResult)
	}{
		{
			name:    "Janela insuficiente - sem resultado",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, Reach: 1000, Spend: 100},
			window:  historical(1500, 100, 2),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:    "Media de gasto zero - sem resultado",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, Reach: 1000, Spend: 100},
			window:  historical(1500, 0, 3),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:    "Queda forte de eficiencia - severidade alta",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, Reach: 1000, Spend: 100},
			window:  historical(1500, 100, 3),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.DiagnosticSaturation, result.Type)
				assert.Equal(t, "reach_efficiency", result.MetricName)
				assert.Equal(t, domain.SeverityHigh, result.Severity)
				assert.Equal(t, 10.0, result.CurrentValue)
				assert.Equal(t, 15.0, *result.PreviousValue)
				assert.InDelta(t, -33.33, *result.ChangePercentage, 0.01)
				// 3 amostras: 0.65 + 0.3
				assert.Equal(t, domain.MaxConfidence, result.Confidence)
				assert.Equal(t, 3, result.Metadata["snapshots_analyzed"])
			},
		},
		{
			name:    "Queda moderada de eficiencia - severidade media",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, Reach: 850, Spend: 100},
			window:  historical(1000, 100, 3),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.SeverityMedium, result.Severity)
				assert.InDelta(t, -15.0, *result.ChangePercentage, 0.01)
			},
		},
		{
			name:    "Eficiencia estavel - severidade baixa",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, Reach: 1000, Spend: 100},
			window:  historical(1000, 100, 3),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.SeverityLow, result.Severity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
			mockSnapshotRepo.EXPECT().
				GetWindow("123", windowStart, date, 7).
				Return(tt.window, nil)

			service := &Service{
				cfg:                testConfig(),
				snapshotRepository: mockSnapshotRepo,
			}

			result, err := service.ComputeSaturation(tt.current)

			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_ComputeDeliveryConcentration(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	since := date.AddDate(0, 0, -1)

	campaigns := func(spends ...float64) []*domain.CampaignBreakdownEntry {
		entries := make([]*domain.CampaignBreakdownEntry, 0, len(spends))
		for _, spend := range spends {
			entries = append(entries, &domain.CampaignBreakdownEntry{Spend: spend})
		}
		return entries
	}

	snapshot := &domain.AccountSnapshot{AccountID: "123", Date: date}

	tests := []struct {
		name      string
		campaigns []*domain.CampaignBreakdownEntry
		validate  func(t *testing.T, result *domain.DiagnosticResult)
	}{
		{
			name:      "Menos de duas campanhas - sem resultado",
			campaigns: campaigns(100),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:      "Gasto total zero - sem resultado",
			campaigns: campaigns(0, 0, 0),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:      "Gasto bem distribuido - severidade baixa",
			campaigns: campaigns(25, 25, 25, 25),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.DiagnosticDeliveryConcentration, result.Type)
				assert.Equal(t, "concentration_ratio", result.MetricName)
				assert.Equal(t, domain.SeverityLow, result.Severity)
				assert.Equal(t, 0.25, result.CurrentValue)
				assert.Equal(t, 0.25, result.Metadata["herfindahl_index"])
				assert.Equal(t, 4, result.Metadata["total_campaigns"])
				assert.Equal(t, 0.8, result.Confidence)
				assert.Nil(t, result.PreviousValue)
				assert.Nil(t, result.ChangePercentage)
				assert.Equal(t, "Delivery is well-distributed across campaigns.", result.Recommendation)
			},
		},
		{
			name:      "Campanha dominante - severidade alta",
			campaigns: campaigns(80, 10, 10),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.SeverityHigh, result.Severity)
				assert.InDelta(t, 0.8, result.CurrentValue, 0.0001)
			},
		},
		{
			name:      "HHI acima do limiar alto - severidade alta",
			campaigns: campaigns(60, 40),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				// Ratio 0.6 sozinho seria medio, mas o HHI de 0.52 dispara o alto
				assert.Equal(t, domain.SeverityHigh, result.Severity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMetaService := metamocks.NewMockIntegrator(ctrl)
			mockMetaService.EXPECT().
				GetCampaignBreakdown(since, date).
				Return(tt.campaigns, nil)

			service := &Service{
				cfg:         testConfig(),
				metaService: mockMetaService,
			}

			result, err := service.ComputeDeliveryConcentration(snapshot)

			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_ComputeDeliveryConcentration_ErroDaAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockMetaService := metamocks.NewMockIntegrator(ctrl)
	mockMetaService.EXPECT().
		GetCampaignBreakdown(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("api indisponivel"))

	service := &Service{
		cfg:         testConfig(),
		metaService: mockMetaService,
	}

	result, err := service.ComputeDeliveryConcentration(&domain.AccountSnapshot{AccountID: "123", Date: date})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_ComputeAuctionShifts(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	windowStart := date.AddDate(0, 0, -7)

	withCPMs := func(cpms ...*float64) []*domain.AccountSnapshot {
		snapshots := make([]*domain.AccountSnapshot, 0, len(cpms))
		for _, cpm := range cpms {
			snapshots = append(snapshots, &domain.AccountSnapshot{AccountID: "123", CPM: cpm})
		}
		return snapshots
	}

	tests := []struct {
		name     string
		current  *domain.AccountSnapshot
		window   []*domain.AccountSnapshot
		validate func(t *testing.T, result *domain.DiagnosticResult)
	}{
		{
			name:    "Snapshot atual sem CPM - sem resultado",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date},
			window:  withCPMs(floatPtr(10), floatPtr(10), floatPtr(10)),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:    "Menos de dois CPMs validos na janela - sem resultado",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, CPM: floatPtr(10)},
			window:  withCPMs(floatPtr(10), nil, nil),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.Nil(t, result)
			},
		},
		{
			name:    "Salto de CPM acima do limiar alto",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, CPM: floatPtr(13.5)},
			window:  withCPMs(floatPtr(10), floatPtr(10), floatPtr(10)),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.DiagnosticAuctionShifts, result.Type)
				assert.Equal(t, "cpm", result.MetricName)
				assert.Equal(t, domain.SeverityHigh, result.Severity)
				assert.Equal(t, 13.5, result.CurrentValue)
				assert.Equal(t, 10.0, *result.PreviousValue)
				assert.InDelta(t, 35.0, *result.ChangePercentage, 0.01)
				assert.InDelta(t, 0.0, result.Metadata["cpm_volatility"].(float64), 0.0001)
				// 3 CPMs validos: 0.7 + 0.3 estoura o teto
				assert.Equal(t, domain.MaxConfidence, result.Confidence)
			},
		},
		{
			name:    "Volatilidade alta com media estavel - severidade media",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, CPM: floatPtr(10)},
			window:  withCPMs(floatPtr(8), floatPtr(12), floatPtr(10)),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.SeverityMedium, result.Severity)
				assert.InDelta(t, 0.0, *result.ChangePercentage, 0.0001)
				assert.InDelta(t, 16.33, result.Metadata["cpm_volatility"].(float64), 0.01)
			},
		},
		{
			name:    "CPM estavel - severidade baixa",
			current: &domain.AccountSnapshot{AccountID: "123", Date: date, CPM: floatPtr(10)},
			window:  withCPMs(floatPtr(10), floatPtr(10), floatPtr(10)),
			validate: func(t *testing.T, result *domain.DiagnosticResult) {
				assert.NotNil(t, result)
				assert.Equal(t, domain.SeverityLow, result.Severity)
				assert.Equal(t, "Auction dynamics are relatively stable.", result.Recommendation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
			mockSnapshotRepo.EXPECT().
				GetWindow("123", windowStart, date, 7).
				Return(tt.window, nil)

			service := &Service{
				cfg:                testConfig(),
				snapshotRepository: mockSnapshotRepo,
			}

			result, err := service.ComputeAuctionShifts(tt.current)

			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_ComputeTrackingDegradation(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	windowStart := date.AddDate(0, 0, -7)

	healthsWithScores := func(scores ...float64) []*domain.EventsHealth {
		healths := make([]*domain.EventsHealth, 0, len(scores))
		for _, score := range scores {
			healths = append(healths, &domain.EventsHealth{QualityScore: score})
		}
		return healths
	}

	snapshot := &domain.AccountSnapshot{AccountID: "123", Date: date}

	t.Run("Sem leitura recente de saude - sem resultado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
		mockEventsHealthRepo.EXPECT().
			GetMostRecentBetween(date.AddDate(0, 0, -1), date).
			Return(nil, nil)

		service := &Service{
			cfg:                    testConfig(),
			eventsHealthRepository: mockEventsHealthRepo,
		}

		result, err := service.ComputeTrackingDegradation(snapshot)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Historico insuficiente - sem resultado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
		mockEventsHealthRepo.EXPECT().
			GetMostRecentBetween(date.AddDate(0, 0, -1), date).
			Return(&domain.EventsHealth{QualityScore: 0.9}, nil)
		mockEventsHealthRepo.EXPECT().
			GetWindow(windowStart, date, 7).
			Return(healthsWithScores(0.9), nil)

		service := &Service{
			cfg:                    testConfig(),
			eventsHealthRepository: mockEventsHealthRepo,
		}

		result, err := service.ComputeTrackingDegradation(snapshot)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Queda forte do score - severidade alta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		recent := &domain.EventsHealth{
			QualityScore:   0.70,
			EventsReceived: 1000,
			EventsDropped:  50,
		}

		mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
		mockEventsHealthRepo.EXPECT().
			GetMostRecentBetween(date.AddDate(0, 0, -1), date).
			Return(recent, nil)
		mockEventsHealthRepo.EXPECT().
			GetWindow(windowStart, date, 7).
			Return(healthsWithScores(0.90, 0.90), nil)

		service := &Service{
			cfg:                    testConfig(),
			eventsHealthRepository: mockEventsHealthRepo,
		}

		result, err := service.ComputeTrackingDegradation(snapshot)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, domain.DiagnosticTrackingDegradation, result.Type)
		assert.Equal(t, "tracking_quality_score", result.MetricName)
		assert.Equal(t, domain.SeverityHigh, result.Severity)
		assert.Equal(t, 0.70, result.CurrentValue)
		assert.InDelta(t, 0.90, *result.PreviousValue, 0.0001)
		assert.InDelta(t, -20.0, *result.ChangePercentage, 0.01)
		assert.Equal(t, 0.85, result.Confidence)
		assert.Equal(t, 1000, result.Metadata["events_received"])
		assert.Equal(t, 50, result.Metadata["events_dropped"])
		assert.Equal(t, 2, result.Metadata["snapshots_analyzed"])
	})

	t.Run("Score estavel - severidade baixa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
		mockEventsHealthRepo.EXPECT().
			GetMostRecentBetween(date.AddDate(0, 0, -1), date).
			Return(&domain.EventsHealth{QualityScore: 0.88}, nil)
		mockEventsHealthRepo.EXPECT().
			GetWindow(windowStart, date, 7).
			Return(healthsWithScores(0.90, 0.90), nil)

		service := &Service{
			cfg:                    testConfig(),
			eventsHealthRepository: mockEventsHealthRepo,
		}

		result, err := service.ComputeTrackingDegradation(snapshot)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, domain.SeverityLow, result.Severity)
	})
}

func TestService_ComputeAllDiagnostics_IsolamentoDeFalhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	windowStart := date.AddDate(0, 0, -7)

	snapshot := &domain.AccountSnapshot{AccountID: "123", Date: date, CPM: floatPtr(10)}

	// Janela curta demais: fadiga, saturacao e leilao pulam sozinhos
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().
		GetWindow("123", windowStart, date, 7).
		Return([]*domain.AccountSnapshot{{AccountID: "123"}}, nil).
		Times(3)

	// Concentracao falha com erro da API e nao derruba as demais
	mockMetaService := metamocks.NewMockIntegrator(ctrl)
	mockMetaService.EXPECT().
		GetCampaignBreakdown(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("api indisponivel"))

	// Rastreamento tem dados e produz o unico resultado
	mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
	mockEventsHealthRepo.EXPECT().
		GetMostRecentBetween(date.AddDate(0, 0, -1), date).
		Return(&domain.EventsHealth{QualityScore: 0.7}, nil)
	mockEventsHealthRepo.EXPECT().
		GetWindow(windowStart, date, 7).
		Return([]*domain.EventsHealth{{QualityScore: 0.9}, {QualityScore: 0.9}}, nil)

	service := &Service{
		cfg:                    testConfig(),
		snapshotRepository:     mockSnapshotRepo,
		eventsHealthRepository: mockEventsHealthRepo,
		metaService:            mockMetaService,
	}

	results := service.ComputeAllDiagnostics(snapshot)

	assert.Len(t, results, 1)
	assert.Equal(t, domain.DiagnosticTrackingDegradation, results[0].Type)
}

func TestService_GetDiagnosticHistory(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	fatigue := domain.DiagnosticFatigue

	stored := []*domain.DiagnosticResult{
		{Type: domain.DiagnosticFatigue, Severity: domain.SeverityHigh},
		{Type: domain.DiagnosticSaturation, Severity: domain.SeverityLow},
		{Type: domain.DiagnosticFatigue, Severity: domain.SeverityMedium},
	}

	t.Run("Sem data - lista os mais recentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDiagnosticRepo := mocks.NewMockDiagnosticRepository(ctrl)
		mockDiagnosticRepo.EXPECT().
			ListRecent(gomock.Any(), &fatigue, 10).
			Return(stored[:1], nil)

		service := &Service{
			cfg:                  testConfig(),
			diagnosticRepository: mockDiagnosticRepo,
		}

		results, err := service.GetDiagnosticHistory(nil, &fatigue, 10)

		assert.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("Com data - filtra pelo tipo em memoria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDiagnosticRepo := mocks.NewMockDiagnosticRepository(ctrl)
		mockDiagnosticRepo.EXPECT().
			GetByDate(date).
			Return(stored, nil)

		service := &Service{
			cfg:                  testConfig(),
			diagnosticRepository: mockDiagnosticRepo,
		}

		results, err := service.GetDiagnosticHistory(&date, &fatigue, 10)

		assert.NoError(t, err)
		assert.Len(t, results, 2)
		for _, result := range results {
			assert.Equal(t, domain.DiagnosticFatigue, result.Type)
		}
	})

	t.Run("Com data e sem tipo - retorna tudo do dia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDiagnosticRepo := mocks.NewMockDiagnosticRepository(ctrl)
		mockDiagnosticRepo.EXPECT().
			GetByDate(date).
			Return(stored, nil)

		service := &Service{
			cfg:                  testConfig(),
			diagnosticRepository: mockDiagnosticRepo,
		}

		results, err := service.GetDiagnosticHistory(&date, nil, 10)

		assert.NoError(t, err)
		assert.Len(t, results, 3)
	})
}

func TestStddev(t *testing.T) {
	assert.Equal(t, 0.0, stddev([]float64{10}))
	assert.Equal(t, 0.0, stddev([]float64{10, 10, 10}))
	assert.InDelta(t, 1.633, stddev([]float64{8, 12, 10}), 0.001)
}
