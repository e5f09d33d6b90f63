package legacystore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	legacydomain "github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore/domain"
	"github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore/legacyclient"
	clientmocks "github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore/legacyclient/mocks"
	"github.com/vfg2006/atelier-manager-api/internal/config"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestIntegrator_GetSalesByPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mockClient.EXPECT().
		GetSales(legacyclient.SalesConsultationParams{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
		}).
		Return(legacyclient.SalesConsultationResponse{
			Data: []legacydomain.SaleRow{
				{ClientID: 1, InstrumentID: "vl-001", SalePrice: 15000, SaleDate: "2024-03-10"},
				{ClientID: 2, InstrumentID: "vc-002", SalePrice: 3800, SaleDate: "data-quebrada"},
				{ClientID: 3, InstrumentID: "vc-002", SalePrice: -3800, SaleDate: "2024-03-20"},
			},
		}, nil)

	sales, err := integrator.GetSalesByPeriod(startDate, endDate)

	assert.NoError(t, err)
	// A linha com data inválida é descartada sem interromper a importação
	assert.Len(t, sales, 2)
	assert.Equal(t, 1, sales[0].ClientID)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), sales[0].SaleDate)
	assert.Equal(t, -3800.0, sales[1].SalePrice)
}

func TestIntegrator_GetSalesByPeriod_ClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetSales(gomock.Any()).
		Return(legacyclient.SalesConsultationResponse{}, assert.AnError)

	sales, err := integrator.GetSalesByPeriod(time.Now(), time.Now())

	assert.Error(t, err)
	assert.Nil(t, sales)
}

func TestIntegrator_GetInstruments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetInstruments().
		Return(legacyclient.InstrumentsConsultationResponse{
			Data: []legacydomain.InstrumentRow{
				{ID: "vl-001", Maker: "Antonio Rossi", Type: "Violino", SerialNumber: "AR-1922", Price: 25000, Sold: false},
				{ID: "", Maker: "Casa Del Vecchio", Type: "Violão", SerialNumber: "DV-1078", Price: 4200, Sold: true},
			},
		}, nil)

	instruments, err := integrator.GetInstruments()

	assert.NoError(t, err)
	assert.Len(t, instruments, 2)

	assert.Equal(t, "vl-001", instruments[0].ID)
	assert.Equal(t, domain.InstrumentStatusAvailable, instruments[0].Status)

	// Instrumento sem ID no feed ganha um ID gerado localmente
	assert.NotEmpty(t, instruments[1].ID)
	assert.Equal(t, domain.InstrumentStatusSold, instruments[1].Status)
}
