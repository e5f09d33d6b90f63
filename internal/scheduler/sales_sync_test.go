package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	legacymocks "github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore/mocks"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type salesSyncMocks struct {
	saleRepo       *mocks.MockSaleRepository
	clientRepo     *mocks.MockClientRepository
	instrumentRepo *mocks.MockInstrumentRepository
	legacyStore    *legacymocks.MockLegacyStoreIntegrator
}

func newSalesSyncService(t *testing.T, config SalesSyncConfig) (*SalesSyncService, salesSyncMocks) {
	ctrl := gomock.NewController(t)

	m := salesSyncMocks{
		saleRepo:       mocks.NewMockSaleRepository(ctrl),
		clientRepo:     mocks.NewMockClientRepository(ctrl),
		instrumentRepo: mocks.NewMockInstrumentRepository(ctrl),
		legacyStore:    legacymocks.NewMockLegacyStoreIntegrator(ctrl),
	}

	return &SalesSyncService{
		config:         config,
		saleRepo:       m.saleRepo,
		clientRepo:     m.clientRepo,
		instrumentRepo: m.instrumentRepo,
		legacyStore:    m.legacyStore,
	}, m
}

func TestSalesSyncService_syncSales(t *testing.T) {
	service, m := newSalesSyncService(t, SalesSyncConfig{
		LookbackDays: 7,
		SyncEnabled:  true,
	})

	sales := []*domain.Sale{
		{ClientID: 1, InstrumentID: "vl-001", SalePrice: 15000, SaleDate: time.Now()},
		{ClientID: 2, InstrumentID: "vc-002", SalePrice: 3800, SaleDate: time.Now()},
	}

	m.legacyStore.EXPECT().
		GetSalesByPeriod(gomock.Any(), gomock.Any()).
		DoAndReturn(func(startDate, endDate time.Time) ([]*domain.Sale, error) {
			// A janela deve cobrir os últimos 7 dias
			assert.WithinDuration(t, endDate.AddDate(0, 0, -7), startDate, time.Minute)
			return sales, nil
		})
	m.clientRepo.EXPECT().ListClients().Return([]*domain.Client{{ID: 1}, {ID: 2}}, nil)
	m.instrumentRepo.EXPECT().
		ListInstruments(nil, 0, 0).
		Return([]*domain.Instrument{{ID: "vl-001"}, {ID: "vc-002"}}, nil)
	m.saleRepo.EXPECT().SaveOrUpdateBatch(sales).Return(nil)

	service.syncSales()

	status := service.GetStatus()
	assert.False(t, status["running"].(bool))
	assert.False(t, status["last_completed_at"].(time.Time).IsZero())
}

func TestSalesSyncService_syncSales_DiscardsOrphanSales(t *testing.T) {
	service, m := newSalesSyncService(t, SalesSyncConfig{
		LookbackDays: 7,
		SyncEnabled:  true,
	})

	valid := &domain.Sale{ClientID: 1, InstrumentID: "vl-001", SalePrice: 15000, SaleDate: time.Now()}
	unknownClient := &domain.Sale{ClientID: 99, InstrumentID: "vl-001", SalePrice: 3800, SaleDate: time.Now()}
	unknownInstrument := &domain.Sale{ClientID: 1, InstrumentID: "xx-999", SalePrice: 4200, SaleDate: time.Now()}

	m.legacyStore.EXPECT().
		GetSalesByPeriod(gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{valid, unknownClient, unknownInstrument}, nil)
	m.clientRepo.EXPECT().ListClients().Return([]*domain.Client{{ID: 1}}, nil)
	m.instrumentRepo.EXPECT().
		ListInstruments(nil, 0, 0).
		Return([]*domain.Instrument{{ID: "vl-001"}}, nil)

	// Somente a venda com cliente e instrumento conhecidos é gravada;
	// as órfãs não podem derrubar o lote inteiro
	m.saleRepo.EXPECT().SaveOrUpdateBatch([]*domain.Sale{valid}).Return(nil)

	service.syncSales()

	status := service.GetStatus()
	assert.False(t, status["running"].(bool))
	assert.False(t, status["last_completed_at"].(time.Time).IsZero())
}

func TestSalesSyncService_syncSales_SplitsLookbackWindow(t *testing.T) {
	service, m := newSalesSyncService(t, SalesSyncConfig{
		LookbackDays: 60,
		SyncEnabled:  true,
	})

	// Janela de 60 dias vira duas consultas de até 30 dias
	m.legacyStore.EXPECT().
		GetSalesByPeriod(gomock.Any(), gomock.Any()).
		DoAndReturn(func(startDate, endDate time.Time) ([]*domain.Sale, error) {
			assert.LessOrEqual(t, endDate.Sub(startDate), 31*24*time.Hour)
			return nil, nil
		}).
		Times(2)
	m.clientRepo.EXPECT().ListClients().Return(nil, nil)
	m.instrumentRepo.EXPECT().ListInstruments(nil, 0, 0).Return(nil, nil)
	m.saleRepo.EXPECT().SaveOrUpdateBatch([]*domain.Sale{}).Return(nil)

	service.syncSales()
}

func TestSalesSyncService_syncSales_IgnoresWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockLegacyStore := legacymocks.NewMockLegacyStoreIntegrator(ctrl)

	service := &SalesSyncService{
		config:      SalesSyncConfig{LookbackDays: 7},
		saleRepo:    mockSaleRepo,
		legacyStore: mockLegacyStore,
		syncRunning: true,
	}

	// Nenhuma chamada esperada nos mocks: a execução deve ser ignorada
	service.syncSales()
}

func TestSalesSyncService_syncSales_LegacyStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockLegacyStore := legacymocks.NewMockLegacyStoreIntegrator(ctrl)

	service := &SalesSyncService{
		config:      SalesSyncConfig{LookbackDays: 7},
		saleRepo:    mockSaleRepo,
		legacyStore: mockLegacyStore,
	}

	mockLegacyStore.EXPECT().
		GetSalesByPeriod(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	// O erro é logado e a sincronização termina sem gravar nada
	service.syncSales()

	status := service.GetStatus()
	assert.False(t, status["running"].(bool))
}

func TestInstrumentsSyncService_syncInstruments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInstrumentRepo := mocks.NewMockInstrumentRepository(ctrl)
	mockLegacyStore := legacymocks.NewMockLegacyStoreIntegrator(ctrl)

	service := &InstrumentsSyncService{
		config:         InstrumentsSyncConfig{SyncEnabled: true},
		instrumentRepo: mockInstrumentRepo,
		legacyStore:    mockLegacyStore,
	}

	instruments := []*domain.Instrument{
		{ID: "vl-001", Maker: "Antonio Rossi", Type: "Violino", Status: domain.InstrumentStatusAvailable},
		{ID: "vc-002", Maker: "Casa Del Vecchio", Type: "Violão", Status: domain.InstrumentStatusSold},
	}

	mockLegacyStore.EXPECT().GetInstruments().Return(instruments, nil)
	mockInstrumentRepo.EXPECT().SaveOrUpdateBatch(instruments).Return(nil)

	service.syncInstruments()

	status := service.GetStatus()
	assert.False(t, status["running"].(bool))
}
