package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository"
	"github.com/vfg2006/atelier-manager-api/internal/config"
)

// InstrumentsSyncConfig representa a configuração do agendador de estoque
type InstrumentsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// InstrumentsSyncService espelha o catálogo de instrumentos do sistema antigo
type InstrumentsSyncService struct {
	scheduler           *gocron.Scheduler
	config              InstrumentsSyncConfig
	instrumentRepo      repository.InstrumentRepository
	legacyStore         legacystore.LegacyStoreIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewInstrumentsSyncService cria uma nova instância do serviço de sincronização
func NewInstrumentsSyncService(
	instrumentRepo repository.InstrumentRepository,
	legacyStore legacystore.LegacyStoreIntegrator,
	appConfig *config.Config,
) *InstrumentsSyncService {
	syncConfig := InstrumentsSyncConfig{
		CronSchedule: appConfig.InstrumentsSync.CronSchedule,
		SyncEnabled:  appConfig.InstrumentsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de estoque carregada")

	return &InstrumentsSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		instrumentRepo: instrumentRepo,
		legacyStore:    legacyStore,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *InstrumentsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de estoque desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de estoque")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncInstruments()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de estoque: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de estoque")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado
func (s *InstrumentsSyncService) TriggerManualSync() {
	go s.syncInstruments()
}

// GetStatus informa o estado atual do agendador
func (s *InstrumentsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.SyncEnabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *InstrumentsSyncService) syncInstruments() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estoque já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização de estoque")

	instruments, err := s.legacyStore.GetInstruments()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar instrumentos do sistema antigo")
		return
	}

	if err := s.instrumentRepo.SaveOrUpdateBatch(instruments); err != nil {
		logrus.WithError(err).Error("Erro ao salvar instrumentos sincronizados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"instruments": len(instruments),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Sincronização de estoque concluída")
}
