// Package scheduler agenda as sincronizações com o sistema antigo da loja
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
	"github.com/vfg2006/atelier-manager-api/internal/domain"
)

// SalesSyncConfig representa a configuração do agendador de vendas
type SalesSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// syncWindowDays limita o período de cada consulta ao feed de vendas;
// janelas maiores são quebradas em requisições sequenciais
const syncWindowDays = 30

// SalesSyncService importa o histórico de vendas do sistema antigo
type SalesSyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesSyncConfig
	saleRepo            repository.SaleRepository
	clientRepo          repository.ClientRepository
	instrumentRepo      repository.InstrumentRepository
	legacyStore         legacystore.LegacyStoreIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSalesSyncService cria uma nova instância do serviço de sincronização
func NewSalesSyncService(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	instrumentRepo repository.InstrumentRepository,
	legacyStore legacystore.LegacyStoreIntegrator,
	appConfig *config.Config,
) *SalesSyncService {
	syncConfig := SalesSyncConfig{
		CronSchedule:        appConfig.SalesSync.CronSchedule,
		LookbackDays:        appConfig.SalesSync.LookbackDays,
		RequestDelaySeconds: appConfig.SalesSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.SalesSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de vendas carregada")

	return &SalesSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		saleRepo:       saleRepo,
		clientRepo:     clientRepo,
		instrumentRepo: instrumentRepo,
		legacyStore:    legacyStore,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *SalesSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSales()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado
func (s *SalesSyncService) TriggerManualSync() {
	go s.syncSales()
}

// GetStatus informa o estado atual do agendador
func (s *SalesSyncService) GetStatus() map[string]any {
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

// syncSales importa as vendas da janela de lookback. Uma execução por vez:
// se já houver sincronização em andamento, a nova chamada é ignorada
func (s *SalesSyncService) syncSales() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas já em andamento, ignorando")
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
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"start_date": startDate.Format("2006-01-02"),
		"end_date":   endDate.Format("2006-01-02"),
	}).Info("Iniciando sincronização de vendas")

	sales := make([]*domain.Sale, 0)
	for chunkStart := startDate; chunkStart.Before(endDate); {
		chunkEnd := chunkStart.AddDate(0, 0, syncWindowDays)
		if chunkEnd.After(endDate) {
			chunkEnd = endDate
		}

		chunk, err := s.legacyStore.GetSalesByPeriod(chunkStart, chunkEnd)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar vendas do sistema antigo")
			return
		}
		sales = append(sales, chunk...)

		chunkStart = chunkEnd
		if chunkStart.Before(endDate) {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	sales, err := s.discardOrphanSales(sales)
	if err != nil {
		return
	}

	if err := s.saleRepo.SaveOrUpdateBatch(sales); err != nil {
		logrus.WithError(err).Error("Erro ao salvar vendas sincronizadas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"sales":       len(sales),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Sincronização de vendas concluída")
}

// discardOrphanSales remove do lote as vendas cujo cliente ou instrumento
// ainda não existe no banco. O feed antigo não garante consistência entre
// as coleções e uma única linha órfã derrubaria o insert inteiro
func (s *SalesSyncService) discardOrphanSales(sales []*domain.Sale) ([]*domain.Sale, error) {
	clients, err := s.clientRepo.ListClients()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes para validar a sincronização")
		return nil, err
	}

	instruments, err := s.instrumentRepo.ListInstruments(nil, 0, 0)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar instrumentos para validar a sincronização")
		return nil, err
	}

	knownClients := make(map[int]bool, len(clients))
	for _, client := range clients {
		knownClients[client.ID] = true
	}

	knownInstruments := make(map[string]bool, len(instruments))
	for _, instrument := range instruments {
		knownInstruments[instrument.ID] = true
	}

	valid := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if !knownClients[sale.ClientID] || !knownInstruments[sale.InstrumentID] {
			logrus.WithFields(logrus.Fields{
				"client_id":     sale.ClientID,
				"instrument_id": sale.InstrumentID,
				"sale_date":     sale.SaleDate.Format("2006-01-02"),
			}).Warn("Venda órfã ignorada na sincronização")
			continue
		}
		valid = append(valid, sale)
	}

	return valid, nil
}
