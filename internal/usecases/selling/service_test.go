package selling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type sellingMocks struct {
	saleRepo       *mocks.MockSaleRepository
	clientRepo     *mocks.MockClientRepository
	instrumentRepo *mocks.MockInstrumentRepository
}

func newSellingService(t *testing.T) (SellingService, sellingMocks) {
	ctrl := gomock.NewController(t)

	m := sellingMocks{
		saleRepo:       mocks.NewMockSaleRepository(ctrl),
		clientRepo:     mocks.NewMockClientRepository(ctrl),
		instrumentRepo: mocks.NewMockInstrumentRepository(ctrl),
	}

	return NewService(m.saleRepo, m.clientRepo, m.instrumentRepo), m
}

func TestService_RegisterSale(t *testing.T) {
	service, m := newSellingService(t)

	client := &domain.Client{ID: 1, Name: "Ana"}
	instrument := &domain.Instrument{ID: "vl-001", Status: domain.InstrumentStatusAvailable}

	m.clientRepo.EXPECT().GetClientByID(1).Return(client, nil)
	m.instrumentRepo.EXPECT().GetInstrumentByID("vl-001").Return(instrument, nil)
	m.saleRepo.EXPECT().
		CreateSale(gomock.Any()).
		DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
			assert.Equal(t, 1, sale.ClientID)
			assert.Equal(t, "vl-001", sale.InstrumentID)
			assert.Equal(t, 15000.0, sale.SalePrice)
			assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), sale.SaleDate)
			sale.ID = 10
			return sale, nil
		})
	m.instrumentRepo.EXPECT().
		UpdateInstrument(gomock.Any()).
		DoAndReturn(func(instrument *domain.Instrument) error {
			assert.Equal(t, domain.InstrumentStatusSold, instrument.Status)
			return nil
		})

	sale, err := service.RegisterSale(&domain.CreateSaleRequest{
		ClientID:     1,
		InstrumentID: "vl-001",
		SalePrice:    15000,
		SaleDate:     "2024-03-10",
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, sale.ID)
}

func TestService_RegisterSale_Validation(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.CreateSaleRequest
		expected error
	}{
		{
			name:     "Sem cliente",
			req:      &domain.CreateSaleRequest{InstrumentID: "vl-001", SaleDate: "2024-03-10"},
			expected: ErrMissingRequiredData,
		},
		{
			name:     "Sem instrumento",
			req:      &domain.CreateSaleRequest{ClientID: 1, SaleDate: "2024-03-10"},
			expected: ErrMissingRequiredData,
		},
		{
			name:     "Sem data",
			req:      &domain.CreateSaleRequest{ClientID: 1, InstrumentID: "vl-001"},
			expected: ErrMissingRequiredData,
		},
		{
			name:     "Data em formato inválido",
			req:      &domain.CreateSaleRequest{ClientID: 1, InstrumentID: "vl-001", SaleDate: "10/03/2024"},
			expected: ErrInvalidSaleDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newSellingService(t)

			sale, err := service.RegisterSale(tt.req)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, sale)
		})
	}
}

func TestService_RegisterSale_InstrumentAlreadySold(t *testing.T) {
	service, m := newSellingService(t)

	m.clientRepo.EXPECT().GetClientByID(1).Return(&domain.Client{ID: 1}, nil)
	m.instrumentRepo.EXPECT().
		GetInstrumentByID("vl-001").
		Return(&domain.Instrument{ID: "vl-001", Status: domain.InstrumentStatusSold}, nil)

	sale, err := service.RegisterSale(&domain.CreateSaleRequest{
		ClientID:     1,
		InstrumentID: "vl-001",
		SalePrice:    15000,
		SaleDate:     "2024-03-10",
	})

	assert.ErrorIs(t, err, ErrInstrumentSold)
	assert.Nil(t, sale)
}

func TestService_RefundSale(t *testing.T) {
	service, m := newSellingService(t)

	original := &domain.Sale{
		ID:           10,
		ClientID:     1,
		InstrumentID: "vl-001",
		SalePrice:    15000,
		SaleDate:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	m.saleRepo.EXPECT().ListSalesByClientID(1).Return([]*domain.Sale{original}, nil)
	m.saleRepo.EXPECT().
		CreateSale(gomock.Any()).
		DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
			assert.Equal(t, -15000.0, sale.SalePrice)
			assert.Equal(t, "vl-001", sale.InstrumentID)
			sale.ID = 11
			return sale, nil
		})
	m.instrumentRepo.EXPECT().
		GetInstrumentByID("vl-001").
		Return(&domain.Instrument{ID: "vl-001", Status: domain.InstrumentStatusSold}, nil)
	m.instrumentRepo.EXPECT().
		UpdateInstrument(gomock.Any()).
		DoAndReturn(func(instrument *domain.Instrument) error {
			assert.Equal(t, domain.InstrumentStatusAvailable, instrument.Status)
			return nil
		})

	refund, err := service.RefundSale(10, 1)

	assert.NoError(t, err)
	assert.Equal(t, 11, refund.ID)
	assert.Equal(t, domain.PurchaseStatusRefunded, domain.StatusFromPrice(refund.SalePrice))
}

func TestService_RefundSale_NotFound(t *testing.T) {
	service, m := newSellingService(t)

	m.saleRepo.EXPECT().ListSalesByClientID(1).Return(nil, nil)

	refund, err := service.RefundSale(99, 1)

	assert.ErrorIs(t, err, ErrSaleNotFound)
	assert.Nil(t, refund)
}

func TestService_RefundSale_AlreadyRefunded(t *testing.T) {
	service, m := newSellingService(t)

	// A venda 10 já tem a linha negativa correspondente no histórico:
	// um segundo estorno deixaria o total do cliente negativo
	m.saleRepo.EXPECT().
		ListSalesByClientID(1).
		Return([]*domain.Sale{
			{ID: 10, ClientID: 1, InstrumentID: "vl-001", SalePrice: 15000},
			{ID: 11, ClientID: 1, InstrumentID: "vl-001", SalePrice: -15000},
		}, nil)

	refund, err := service.RefundSale(10, 1)

	assert.ErrorIs(t, err, ErrSaleNotRefundable)
	assert.Nil(t, refund)
}

func TestService_RefundSale_NotRefundable(t *testing.T) {
	tests := []struct {
		name  string
		price float64
	}{
		{name: "Venda pendente", price: 0},
		{name: "Venda já estornada", price: -15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newSellingService(t)

			m.saleRepo.EXPECT().
				ListSalesByClientID(1).
				Return([]*domain.Sale{{ID: 10, ClientID: 1, SalePrice: tt.price}}, nil)

			refund, err := service.RefundSale(10, 1)

			assert.ErrorIs(t, err, ErrSaleNotRefundable)
			assert.Nil(t, refund)
		})
	}
}
