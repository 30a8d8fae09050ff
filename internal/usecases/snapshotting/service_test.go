package snapshotting

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
		Meta: config.Meta{AdAccountID: "123"},
	}
}

func TestService_CreateDailySnapshot_JaExistente(t *testing.T) {
	// Snapshot já capturado: a API do Meta não pode ser chamada
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.AccountSnapshot{ID: 4, AccountID: "123", Date: date, Spend: 150}

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().GetByAccountAndDate("123", date).Return(existing, nil)

	mockMeta := metamocks.NewMockIntegrator(ctrl)

	service := &Service{
		cfg:                testConfig(),
		metaService:        mockMeta,
		snapshotRepository: mockSnapshotRepo,
	}

	snapshot, err := service.CreateDailySnapshot(date)

	assert.NoError(t, err)
	assert.Equal(t, existing, snapshot)
}

func TestService_CreateDailySnapshot_NovaCaptura(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	fetched := &domain.AccountSnapshot{AccountID: "123", Date: date, Spend: 150}
	saved := &domain.AccountSnapshot{ID: 9, AccountID: "123", Date: date, Spend: 150}

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	gomock.InOrder(
		mockSnapshotRepo.EXPECT().GetByAccountAndDate("123", date).Return(nil, nil),
		mockSnapshotRepo.EXPECT().Insert(fetched).Return(nil),
		mockSnapshotRepo.EXPECT().GetByAccountAndDate("123", date).Return(saved, nil),
	)

	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockMeta.EXPECT().GetAccountSnapshot(date).Return(fetched, nil)

	service := &Service{
		cfg:                testConfig(),
		metaService:        mockMeta,
		snapshotRepository: mockSnapshotRepo,
	}

	snapshot, err := service.CreateDailySnapshot(date)

	assert.NoError(t, err)
	assert.Equal(t, saved, snapshot)
}

func TestService_CreateDailySnapshot_CorridaPerdida(t *testing.T) {
	// Inserção duplicada: o registro do vencedor é relido e devolvido
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	fetched := &domain.AccountSnapshot{AccountID: "123", Date: date, Spend: 150}
	winner := &domain.AccountSnapshot{ID: 2, AccountID: "123", Date: date, Spend: 148}

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	gomock.InOrder(
		mockSnapshotRepo.EXPECT().GetByAccountAndDate("123", date).Return(nil, nil),
		mockSnapshotRepo.EXPECT().Insert(fetched).Return(domain.ErrAlreadyExists),
		mockSnapshotRepo.EXPECT().GetByAccountAndDate("123", date).Return(winner, nil),
	)

	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockMeta.EXPECT().GetAccountSnapshot(date).Return(fetched, nil)

	service := &Service{
		cfg:                testConfig(),
		metaService:        mockMeta,
		snapshotRepository: mockSnapshotRepo,
	}

	snapshot, err := service.CreateDailySnapshot(date)

	assert.NoError(t, err)
	assert.Equal(t, winner, snapshot)
}

func TestService_CreateDailySnapshot_FalhaNoMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().GetByAccountAndDate("123", date).Return(nil, nil)

	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockMeta.EXPECT().GetAccountSnapshot(date).Return(nil, errors.New("rate limited"))

	service := &Service{
		cfg:                testConfig(),
		metaService:        mockMeta,
		snapshotRepository: mockSnapshotRepo,
	}

	snapshot, err := service.CreateDailySnapshot(date)

	assert.Nil(t, snapshot)
	assert.Error(t, err)
}

func TestService_CreateEventsHealthSnapshot_JaExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.EventsHealth{ID: 3, Date: date, EventsReceived: 1000}

	mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
	mockEventsHealthRepo.EXPECT().GetAt(date).Return(existing, nil)

	mockMeta := metamocks.NewMockIntegrator(ctrl)

	service := &Service{
		cfg:                    testConfig(),
		metaService:            mockMeta,
		eventsHealthRepository: mockEventsHealthRepo,
	}

	health, err := service.CreateEventsHealthSnapshot(date)

	assert.NoError(t, err)
	assert.Equal(t, existing, health)
}

func TestService_CreateEventsHealthSnapshot_ContaSemPixel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
	mockEventsHealthRepo.EXPECT().GetAt(date).Return(nil, nil)

	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockMeta.EXPECT().GetEventsHealth(date).Return(nil, nil)

	service := &Service{
		cfg:                    testConfig(),
		metaService:            mockMeta,
		eventsHealthRepository: mockEventsHealthRepo,
	}

	health, err := service.CreateEventsHealthSnapshot(date)

	assert.NoError(t, err)
	assert.Nil(t, health)
}

func TestService_CreateEventsHealthSnapshot_NovaCaptura(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	fetched := &domain.EventsHealth{Date: date, EventsReceived: 1000, EventsMatched: 800}
	saved := &domain.EventsHealth{ID: 1, Date: date, EventsReceived: 1000, EventsMatched: 800}

	mockEventsHealthRepo := mocks.NewMockEventsHealthRepository(ctrl)
	gomock.InOrder(
		mockEventsHealthRepo.EXPECT().GetAt(date).Return(nil, nil),
		mockEventsHealthRepo.EXPECT().Insert(fetched).Return(nil),
		mockEventsHealthRepo.EXPECT().GetAt(date).Return(saved, nil),
	)

	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockMeta.EXPECT().GetEventsHealth(date).Return(fetched, nil)

	service := &Service{
		cfg:                    testConfig(),
		metaService:            mockMeta,
		eventsHealthRepository: mockEventsHealthRepo,
	}

	health, err := service.CreateEventsHealthSnapshot(date)

	assert.NoError(t, err)
	assert.Equal(t, saved, health)
}

func TestService_ListSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	snapshots := []*domain.AccountSnapshot{
		{ID: 2, AccountID: "123", Date: date},
		{ID: 1, AccountID: "123", Date: date.AddDate(0, 0, -1)},
	}

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockSnapshotRepo.EXPECT().List(30).Return(snapshots, nil)

	service := &Service{
		cfg:                testConfig(),
		snapshotRepository: mockSnapshotRepo,
	}

	result, err := service.ListSnapshots(30)

	assert.NoError(t, err)
	assert.Equal(t, snapshots, result)
}
