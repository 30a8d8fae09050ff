package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-analyst-api/internal/config"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
	analyzingmocks "github.com/vfg2006/ad-analyst-api/internal/usecases/analyzing/mocks"
	snapshottingmocks "github.com/vfg2006/ad-analyst-api/internal/usecases/snapshotting/mocks"
	"go.uber.org/mock/gomock"
)

func testAppConfig(enabled bool) *config.Config {
	return &config.Config{
		DailySnapshotSync: config.DailySnapshotSync{
			CronSchedule: "0 1 * * *",
			Enabled:      enabled,
		},
	}
}

func TestProcessDate_ExecutaTodasAsEtapas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockSnapshotter := snapshottingmocks.NewMockSnapshotter(ctrl)
	mockAnalyst := analyzingmocks.NewMockAnalyst(ctrl)

	gomock.InOrder(
		mockSnapshotter.EXPECT().
			CreateDailySnapshot(date).
			Return(&domain.AccountSnapshot{ID: 1, Date: date}, nil),
		mockSnapshotter.EXPECT().
			CreateEventsHealthSnapshot(date).
			Return(&domain.EventsHealth{ID: 1, Date: date}, nil),
		mockAnalyst.EXPECT().EnsureDiagnostics(date).Return(nil),
		mockAnalyst.EXPECT().
			GenerateDailyOverview(gomock.Any(), date).
			Return(&domain.DailyOverview{ID: 1, Date: date}, nil),
	)

	service := NewDailySnapshotSyncService(mockSnapshotter, mockAnalyst, testAppConfig(true))

	service.processDate("abc123", date)
}

func TestProcessDate_FalhasIsoladas(t *testing.T) {
	// Cada etapa falhando não impede as seguintes de rodar
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mockSnapshotter := snapshottingmocks.NewMockSnapshotter(ctrl)
	mockAnalyst := analyzingmocks.NewMockAnalyst(ctrl)

	mockSnapshotter.EXPECT().
		CreateDailySnapshot(date).
		Return(nil, errors.New("rate limited"))
	mockSnapshotter.EXPECT().
		CreateEventsHealthSnapshot(date).
		Return(nil, errors.New("rate limited"))
	mockAnalyst.EXPECT().EnsureDiagnostics(date).Return(errors.New("db down"))
	mockAnalyst.EXPECT().
		GenerateDailyOverview(gomock.Any(), date).
		Return(nil, errors.New("timeout"))

	service := NewDailySnapshotSyncService(mockSnapshotter, mockAnalyst, testAppConfig(true))

	service.processDate("abc123", date)
}

func TestRunDailySync_ProcessaODiaAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	yesterday := time.Now().AddDate(0, 0, -1)
	expectedDate := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	mockSnapshotter := snapshottingmocks.NewMockSnapshotter(ctrl)
	mockAnalyst := analyzingmocks.NewMockAnalyst(ctrl)

	mockSnapshotter.EXPECT().
		CreateDailySnapshot(expectedDate).
		Return(&domain.AccountSnapshot{ID: 1, Date: expectedDate}, nil)
	mockSnapshotter.EXPECT().
		CreateEventsHealthSnapshot(expectedDate).
		Return(nil, nil)
	mockAnalyst.EXPECT().EnsureDiagnostics(expectedDate).Return(nil)
	mockAnalyst.EXPECT().
		GenerateDailyOverview(gomock.Any(), expectedDate).
		Return(&domain.DailyOverview{ID: 1, Date: expectedDate}, nil)

	service := NewDailySnapshotSyncService(mockSnapshotter, mockAnalyst, testAppConfig(true))

	service.runDailySync()

	assert.NotEmpty(t, service.lastSyncID)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestRunDailySync_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotter := snapshottingmocks.NewMockSnapshotter(ctrl)
	mockAnalyst := analyzingmocks.NewMockAnalyst(ctrl)

	service := NewDailySnapshotSyncService(mockSnapshotter, mockAnalyst, testAppConfig(true))
	service.syncRunning = true

	// Com uma execução marcada como em andamento, nenhuma etapa pode rodar
	service.runDailySync()

	assert.True(t, service.syncRunning)
}

func TestStart_DesabilitadoPorConfiguracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotter := snapshottingmocks.NewMockSnapshotter(ctrl)
	mockAnalyst := analyzingmocks.NewMockAnalyst(ctrl)

	service := NewDailySnapshotSyncService(mockSnapshotter, mockAnalyst, testAppConfig(false))

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotter := snapshottingmocks.NewMockSnapshotter(ctrl)
	mockAnalyst := analyzingmocks.NewMockAnalyst(ctrl)

	service := NewDailySnapshotSyncService(mockSnapshotter, mockAnalyst, testAppConfig(true))
	service.lastSyncID = "abc123"

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 1 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "abc123", status["last_sync_id"])
}
