package customering

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func newTestClients() []*domain.Client {
	return []*domain.Client{
		{ID: 1, Name: "Ana", Lastname: "Souza", Email: "ana@exemplo.com"},
		{ID: 2, Name: "Bruno", Lastname: "Lima", Email: "bruno@exemplo.com"},
		{ID: 3, Name: "Carla", Lastname: "Mendes", Email: "carla@exemplo.com"},
	}
}

func newTestInstruments() []*domain.Instrument {
	return []*domain.Instrument{
		{ID: "vl-001", Maker: "Antonio Rossi", Type: "Violino", SerialNumber: "AR-1922"},
		{ID: "vc-002", Maker: "Casa Del Vecchio", Type: "Violão", SerialNumber: "DV-1078"},
	}
}

func TestService_ListCustomers(t *testing.T) {
	tests := []struct {
		name     string
		filters  *domain.CustomerFilters
		clients  []*domain.Client
		sales    []*domain.Sale
		validate func(t *testing.T, result *domain.CustomerListResponse)
	}{
		{
			name:    "Clientes sem vendas aparecem com histórico vazio",
			filters: nil,
			clients: newTestClients(),
			sales:   nil,
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Len(t, result.Customers, 3)
				assert.Equal(t, 3, result.Total)

				for _, customer := range result.Customers {
					assert.Empty(t, customer.Purchases)
					assert.Zero(t, customer.TotalSpent)
					assert.Zero(t, customer.PurchaseCount)
					assert.Nil(t, customer.LastPurchaseDate)
				}
			},
		},
		{
			name:    "Vendas agrupadas por cliente com total e data da última compra",
			filters: nil,
			clients: newTestClients(),
			sales: []*domain.Sale{
				{ID: 10, ClientID: 1, InstrumentID: "vl-001", SalePrice: 15000, SaleDate: date(2024, 3, 10)},
				{ID: 11, ClientID: 1, InstrumentID: "vc-002", SalePrice: 4200.50, SaleDate: date(2024, 6, 2)},
				{ID: 12, ClientID: 2, InstrumentID: "vc-002", SalePrice: 3800, SaleDate: date(2024, 1, 20)},
			},
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Equal(t, 3, result.Total)

				ana := result.Customers[0]
				assert.Equal(t, "Ana", ana.Client.Name)
				assert.Equal(t, 2, ana.PurchaseCount)
				assert.Equal(t, 19200.50, ana.TotalSpent)
				assert.Equal(t, date(2024, 6, 2), *ana.LastPurchaseDate)
				assert.Equal(t, "Violino Antonio Rossi, nº de série AR-1922", ana.Purchases[0].InstrumentName)

				carla := result.Customers[2]
				assert.Zero(t, carla.PurchaseCount)
			},
		},
		{
			name:    "Estorno subtrai do total e recebe status refunded",
			filters: nil,
			clients: newTestClients()[:1],
			sales: []*domain.Sale{
				{ID: 10, ClientID: 1, InstrumentID: "vl-001", SalePrice: 15000, SaleDate: date(2024, 3, 10)},
				{ID: 13, ClientID: 1, InstrumentID: "vl-001", SalePrice: -15000, SaleDate: date(2024, 3, 18)},
				{ID: 14, ClientID: 1, InstrumentID: "vc-002", SalePrice: 0, SaleDate: date(2024, 4, 1)},
			},
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				ana := result.Customers[0]
				assert.Equal(t, 3, ana.PurchaseCount)
				assert.Equal(t, 0.0, ana.TotalSpent)
				assert.Equal(t, domain.PurchaseStatusCompleted, ana.Purchases[0].Status)
				assert.Equal(t, domain.PurchaseStatusRefunded, ana.Purchases[1].Status)
				assert.Equal(t, domain.PurchaseStatusPending, ana.Purchases[2].Status)
			},
		},
		{
			name:    "Busca por substring cobre nome, sobrenome e email",
			filters: &domain.CustomerFilters{Search: "LIMA"},
			clients: newTestClients(),
			sales:   nil,
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Equal(t, 1, result.Total)
				assert.Equal(t, "Bruno", result.Customers[0].Client.Name)
			},
		},
		{
			name:    "Busca por email",
			filters: &domain.CustomerFilters{Search: "carla@"},
			clients: newTestClients(),
			sales:   nil,
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Equal(t, 1, result.Total)
				assert.Equal(t, "Carla", result.Customers[0].Client.Name)
			},
		},
		{
			name:    "Ordenação por gasto total decrescente",
			filters: &domain.CustomerFilters{Sort: domain.SortBySpend},
			clients: newTestClients(),
			sales: []*domain.Sale{
				{ID: 10, ClientID: 1, InstrumentID: "vl-001", SalePrice: 1000, SaleDate: date(2024, 3, 10)},
				{ID: 11, ClientID: 2, InstrumentID: "vc-002", SalePrice: 9000, SaleDate: date(2024, 1, 20)},
			},
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Equal(t, "Bruno", result.Customers[0].Client.Name)
				assert.Equal(t, "Ana", result.Customers[1].Client.Name)
				assert.Equal(t, "Carla", result.Customers[2].Client.Name)
			},
		},
		{
			name:    "Ordenação por recência com clientes sem compras no fim",
			filters: &domain.CustomerFilters{Sort: domain.SortByRecency},
			clients: newTestClients(),
			sales: []*domain.Sale{
				{ID: 10, ClientID: 1, InstrumentID: "vl-001", SalePrice: 1000, SaleDate: date(2024, 3, 10)},
				{ID: 11, ClientID: 3, InstrumentID: "vc-002", SalePrice: 2000, SaleDate: date(2024, 8, 1)},
			},
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Equal(t, "Carla", result.Customers[0].Client.Name)
				assert.Equal(t, "Ana", result.Customers[1].Client.Name)
				assert.Equal(t, "Bruno", result.Customers[2].Client.Name)
			},
		},
		{
			name:    "Paginação devolve a fatia pedida mantendo o total",
			filters: &domain.CustomerFilters{Limit: 1, Offset: 1},
			clients: newTestClients(),
			sales:   nil,
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Equal(t, 3, result.Total)
				assert.Len(t, result.Customers, 1)
				assert.Equal(t, "Bruno", result.Customers[0].Client.Name)
				assert.Equal(t, 1, result.Limit)
				assert.Equal(t, 1, result.Offset)
			},
		},
		{
			name:    "Offset além do fim devolve página vazia",
			filters: &domain.CustomerFilters{Limit: 10, Offset: 50},
			clients: newTestClients(),
			sales:   nil,
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Equal(t, 3, result.Total)
				assert.Empty(t, result.Customers)
			},
		},
		{
			name:    "Venda sem cliente correspondente é descartada",
			filters: nil,
			clients: newTestClients()[:1],
			sales: []*domain.Sale{
				{ID: 10, ClientID: 99, InstrumentID: "vl-001", SalePrice: 1000, SaleDate: date(2024, 3, 10)},
			},
			validate: func(t *testing.T, result *domain.CustomerListResponse) {
				assert.Equal(t, 1, result.Total)
				assert.Empty(t, result.Customers[0].Purchases)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClientRepo := mocks.NewMockClientRepository(ctrl)
			mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
			mockInstrumentRepo := mocks.NewMockInstrumentRepository(ctrl)

			mockClientRepo.EXPECT().ListClients().Return(tt.clients, nil)
			mockSaleRepo.EXPECT().ListSales(nil, nil).Return(tt.sales, nil)
			mockInstrumentRepo.EXPECT().ListInstruments(nil, 0, 0).Return(newTestInstruments(), nil)

			service := NewService(mockClientRepo, mockSaleRepo, mockInstrumentRepo)

			result, err := service.ListCustomers(tt.filters)
			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_ListCustomers_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockInstrumentRepo := mocks.NewMockInstrumentRepository(ctrl)

	mockClientRepo.EXPECT().ListClients().Return(nil, errors.New("connection refused"))

	service := NewService(mockClientRepo, mockSaleRepo, mockInstrumentRepo)

	result, err := service.ListCustomers(nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_GetCustomerByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockInstrumentRepo := mocks.NewMockInstrumentRepository(ctrl)

	client := &domain.Client{ID: 1, Name: "Ana", Lastname: "Souza"}
	sales := []*domain.Sale{
		{ID: 10, ClientID: 1, InstrumentID: "vl-001", SalePrice: 15000, SaleDate: date(2024, 3, 10)},
	}

	mockClientRepo.EXPECT().GetClientByID(1).Return(client, nil)
	mockSaleRepo.EXPECT().ListSalesByClientID(1).Return(sales, nil)
	mockInstrumentRepo.EXPECT().ListInstruments(nil, 0, 0).Return(newTestInstruments(), nil)

	service := NewService(mockClientRepo, mockSaleRepo, mockInstrumentRepo)

	customer, err := service.GetCustomerByID(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, customer.PurchaseCount)
	assert.Equal(t, 15000.0, customer.TotalSpent)
	assert.Equal(t, domain.PurchaseStatusCompleted, customer.Purchases[0].Status)
}

func TestService_GetCustomerByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockInstrumentRepo := mocks.NewMockInstrumentRepository(ctrl)

	mockClientRepo.EXPECT().GetClientByID(42).Return(nil, nil)

	service := NewService(mockClientRepo, mockSaleRepo, mockInstrumentRepo)

	customer, err := service.GetCustomerByID(42)
	assert.NoError(t, err)
	assert.Nil(t, customer)
}
