package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-analyst-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestService_BuildContext_SemSnapshotAncora(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().
		GetMostRecentAt(date).
		Return(nil, nil)

	service := &Service{snapshotRepository: mockSnapshotRepo}

	bundle, err := service.BuildContext(date)

	assert.NoError(t, err)
	assert.NotNil(t, bundle)
	assert.True(t, bundle.IsEmpty())
}

func TestService_BuildContext_BundleCompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	previousDate := date.AddDate(0, 0, -1)

	anchor := &domain.AccountSnapshot{
		AccountID:   "123",
		Date:        date,
		Spend:       200,
		Impressions: 20000,
		Clicks:      400,
		Reach:       9000,
		Frequency:   2.2,
		CPM:         floatPtr(10),
	}

	previous := &domain.AccountSnapshot{
		AccountID:   "123",
		Date:        previousDate,
		Spend:       100,
		Impressions: 10000,
		Clicks:      200,
		Reach:       8000,
		Frequency:   2.0,
		CPM:         floatPtr(8),
	}

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().GetMostRecentAt(date).Return(anchor, nil)
	mockSnapshotRepo.EXPECT().
		ListUpTo("123", date).
		Return([]*domain.AccountSnapshot{anchor, previous}, nil)
	mockSnapshotRepo.EXPECT().
		GetMostRecentBefore("123", date).
		Return(previous, nil)

	changePct := floatPtr(35.0)
	mockDiagnosticRepo := mocks.NewMockDiagnosticRepository(ctrl)
	mockDiagnosticRepo.EXPECT().
		GetByDate(date).
		Return([]*domain.DiagnosticResult{
			{
				Type:             domain.DiagnosticAuctionShifts,
				MetricName:       "cpm",
				Severity:         domain.SeverityHigh,
				Confidence:       0.95,
				Explanation:      "CPM changed by 35.0% vs 7-day average.",
				Recommendation:   "Monitor competitive landscape.",
				ChangePercentage: changePct,
				Metadata:         map[string]any{"cpm_volatility": 1.2},
			},
		}, nil)

	mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
	mockEventsHealthRepo.EXPECT().
		GetAt(date).
		Return(&domain.EventsHealth{
			QualityScore:   0.9,
			EventsReceived: 1000,
			EventsDropped:  50,
			EventsMatched:  900,
		}, nil)

	service := &Service{
		snapshotRepository:     mockSnapshotRepo,
		eventsHealthRepository: mockEventsHealthRepo,
		diagnosticRepository:   mockDiagnosticRepo,
	}

	bundle, err := service.BuildContext(date)

	assert.NoError(t, err)
	assert.False(t, bundle.IsEmpty())

	assert.Equal(t, "2024-03-10", bundle.CurrentSnapshot.Date)
	assert.Equal(t, 200.0, bundle.CurrentSnapshot.Spend)
	assert.Equal(t, "2024-03-09", bundle.PreviousSnapshot.Date)
	assert.Len(t, bundle.HistoricalData, 2)

	// Variações dia-a-dia contra o snapshot anterior
	assert.NotNil(t, bundle.Changes)
	assert.InDelta(t, 100.0, bundle.Changes.SpendChange, 0.0001)
	assert.InDelta(t, 100.0, bundle.Changes.ImpressionsChange, 0.0001)
	assert.InDelta(t, 100.0, bundle.Changes.ClicksChange, 0.0001)
	assert.InDelta(t, 25.0, *bundle.Changes.CPMChange, 0.0001)

	// Projeção pública do diagnóstico não carrega metadata
	assert.Len(t, bundle.Diagnostics, 1)
	assert.Equal(t, domain.DiagnosticAuctionShifts, bundle.Diagnostics[0].Type)
	assert.Equal(t, "cpm", bundle.Diagnostics[0].Metric)
	assert.Equal(t, 35.0, *bundle.Diagnostics[0].ChangePercentage)

	assert.NotNil(t, bundle.EventsHealth)
	assert.Equal(t, 0.9, bundle.EventsHealth.TrackingQualityScore)
	assert.Equal(t, 1000, bundle.EventsHealth.EventsReceived)
}

func TestService_BuildContext_SemAnteriorNemSaude(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	anchor := &domain.AccountSnapshot{
		AccountID: "123",
		Date:      date,
		Spend:     100,
	}

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().GetMostRecentAt(date).Return(anchor, nil)
	mockSnapshotRepo.EXPECT().
		ListUpTo("123", date).
		Return([]*domain.AccountSnapshot{anchor}, nil)
	mockSnapshotRepo.EXPECT().GetMostRecentBefore("123", date).Return(nil, nil)

	mockDiagnosticRepo := mocks.NewMockDiagnosticRepository(ctrl)
	mockDiagnosticRepo.EXPECT().GetByDate(date).Return(nil, nil)

	mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
	mockEventsHealthRepo.EXPECT().GetAt(date).Return(nil, nil)

	service := &Service{
		snapshotRepository:     mockSnapshotRepo,
		eventsHealthRepository: mockEventsHealthRepo,
		diagnosticRepository:   mockDiagnosticRepo,
	}

	bundle, err := service.BuildContext(date)

	assert.NoError(t, err)
	assert.False(t, bundle.IsEmpty())
	assert.Nil(t, bundle.PreviousSnapshot)
	assert.Nil(t, bundle.Changes)
	assert.Nil(t, bundle.EventsHealth)
	assert.Empty(t, bundle.Diagnostics)
	assert.Len(t, bundle.HistoricalData, 1)
}

func TestService_BuildContext_AncoraAnteriorAData(t *testing.T) {
	// Sem snapshot na data exata, a âncora é o mais recente antes dela
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	anchorDate := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	anchor := &domain.AccountSnapshot{
		AccountID: "123",
		Date:      anchorDate,
		Spend:     100,
	}

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().GetMostRecentAt(date).Return(anchor, nil)
	mockSnapshotRepo.EXPECT().
		ListUpTo("123", date).
		Return([]*domain.AccountSnapshot{anchor}, nil)
	mockSnapshotRepo.EXPECT().GetMostRecentBefore("123", anchorDate).Return(nil, nil)

	mockDiagnosticRepo := mocks.NewMockDiagnosticRepository(ctrl)
	mockDiagnosticRepo.EXPECT().GetByDate(anchorDate).Return(nil, nil)

	mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
	mockEventsHealthRepo.EXPECT().GetAt(anchorDate).Return(nil, nil)

	service := &Service{
		snapshotRepository:     mockSnapshotRepo,
		eventsHealthRepository: mockEventsHealthRepo,
		diagnosticRepository:   mockDiagnosticRepo,
	}

	bundle, err := service.BuildContext(date)

	assert.NoError(t, err)
	assert.Equal(t, "2024-03-08", bundle.CurrentSnapshot.Date)
}

func TestComputeChanges_SpendAnteriorZero(t *testing.T) {
	current := &domain.AccountSnapshot{Spend: 100, Impressions: 1000}
	previous := &domain.AccountSnapshot{Spend: 0, Impressions: 500}

	assert.Nil(t, computeChanges(current, previous))
}
