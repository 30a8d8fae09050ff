package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analyst-api/internal/config"
	"github.com/vfg2006/ad-analyst-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analyst-api/internal/usecases/snapshotting"
	"github.com/vfg2006/ad-analyst-api/pkg/utils"
)

// DailySnapshotSyncConfig representa a configuração do agendador diário
type DailySnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DailySnapshotSyncService gerencia o agendamento e execução da rotina diária:
// snapshot da conta, saúde de eventos, diagnósticos e resumo do dia anterior
type DailySnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailySnapshotSyncConfig
	appConfig           *config.Config
	snapshotService     snapshotting.Snapshotter
	analystService      analyzing.Analyst
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncID          string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailySnapshotSyncService cria uma nova instância do serviço de
// sincronização diária
func NewDailySnapshotSyncService(
	snapshotService snapshotting.Snapshotter,
	analystService analyzing.Analyst,
	appConfig *config.Config,
) *DailySnapshotSyncService {
	syncConfig := DailySnapshotSyncConfig{
		CronSchedule: appConfig.DailySnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.DailySnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots diários carregada")

	return &DailySnapshotSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		appConfig:       appConfig,
		snapshotService: snapshotService,
		analystService:  analystService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *DailySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização diária de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailySync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização diária de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots diários")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailySync executa a rotina completa para o dia anterior
func (s *DailySnapshotSyncService) runDailySync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	syncID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador da sincronização")
		syncID = "unknown"
	}

	startTime := time.Now()
	s.lastSyncID = syncID
	s.lastSyncStartedAt = startTime

	// A rotina olha sempre para o dia anterior completo
	date := utils.StartOfDay(time.Now().AddDate(0, 0, -1))

	logrus.WithFields(logrus.Fields{
		"sync_id": syncID,
		"date":    date.Format(time.DateOnly),
	}).Info("Iniciando sincronização diária de snapshots")

	s.processDate(syncID, date)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"sync_id":  syncID,
		"date":     date.Format(time.DateOnly),
		"duration": duration.String(),
	}).Info("Sincronização diária de snapshots concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processDate executa as quatro etapas da rotina para uma data. Cada etapa
// falha de forma isolada: a saúde de eventos e o resumo seguem mesmo sem a
// etapa anterior ter dado certo
func (s *DailySnapshotSyncService) processDate(syncID string, date time.Time) {
	if _, err := s.snapshotService.CreateDailySnapshot(date); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"sync_id": syncID,
			"date":    date.Format(time.DateOnly),
		}).Error("Erro ao capturar snapshot da conta")
	}

	if _, err := s.snapshotService.CreateEventsHealthSnapshot(date); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"sync_id": syncID,
			"date":    date.Format(time.DateOnly),
		}).Error("Erro ao capturar saúde de eventos")
	}

	if err := s.analystService.EnsureDiagnostics(date); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"sync_id": syncID,
			"date":    date.Format(time.DateOnly),
		}).Error("Erro ao computar diagnósticos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.analystService.GenerateDailyOverview(ctx, date); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"sync_id": syncID,
			"date":    date.Format(time.DateOnly),
		}).Error("Erro ao gerar resumo diário")
	}
}

// TriggerManualSync inicia manualmente uma sincronização diária
func (s *DailySnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots diários")
	go s.runDailySync()
}

// GetStatus retorna o status atual do agendador
func (s *DailySnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_id":           s.lastSyncID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
