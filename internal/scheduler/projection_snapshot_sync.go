package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-projection-api/internal/config"
	"github.com/vfg2006/brand-projection-api/internal/observability"
	"github.com/vfg2006/brand-projection-api/internal/usecases/projecting"
)

const (
	triggerCron   = "cron"
	triggerManual = "manual"
)

// ProjectionSnapshotSyncConfig representa a configuração do agendador de snapshots
type ProjectionSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ProjectionSnapshotSyncService grava periodicamente o resumo da projeção
// da carteira para acompanhar a evolução ao longo do tempo.
type ProjectionSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ProjectionSnapshotSyncConfig
	projector           projecting.Projector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

func NewProjectionSnapshotSyncService(projector projecting.Projector, appConfig *config.Config) *ProjectionSnapshotSyncService {
	syncConfig := ProjectionSnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &ProjectionSnapshotSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		projector: projector,
	}
}

// Start inicia o agendador
func (s *ProjectionSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot de projeção desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshot de projeção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunSync(ctx, triggerCron)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de projeção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshot de projeção")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync gera um snapshot. Retorna false quando outra execução já está em
// andamento.
func (s *ProjectionSnapshotSyncService) RunSync(ctx context.Context, trigger string) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de projeção já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now().UTC()
	s.syncMutex.Unlock()

	startTime := time.Now()

	snapshot, err := s.projector.TakeSnapshot(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	observability.SnapshotDuration.Observe(time.Since(startTime).Seconds())

	if err != nil {
		s.lastError = err.Error()
		observability.SnapshotRunsTotal.WithLabelValues(trigger, "error").Inc()
		logrus.WithError(err).Error("Erro ao gerar snapshot de projeção")
		return true
	}

	s.lastError = ""
	s.lastSnapshotID = snapshot.ID
	s.lastSyncCompletedAt = time.Now().UTC()
	observability.SnapshotRunsTotal.WithLabelValues(trigger, "ok").Inc()

	logrus.WithFields(logrus.Fields{
		"snapshot_id":   snapshot.ID,
		"brand_count":   snapshot.BrandCount,
		"total_revenue": snapshot.TotalRevenue,
		"duration":      time.Since(startTime).String(),
	}).Info("Snapshot de projeção concluído")

	return true
}

// TriggerManualSync inicia manualmente um snapshot em background. Retorna
// false quando já existe uma execução em andamento.
func (s *ProjectionSnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Snapshot de projeção já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando snapshot manual de projeção")
	go s.RunSync(context.Background(), triggerManual)

	return true
}

// IsRunning indica se existe uma execução em andamento
func (s *ProjectionSnapshotSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *ProjectionSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
