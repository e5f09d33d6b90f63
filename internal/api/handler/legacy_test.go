package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	legacydomain "github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore/domain"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/selling/mocks"
	"go.uber.org/mock/gomock"
)

func TestLegacySalesFeed_PeriodFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockSellingService(ctrl)

	// Os parâmetros start_date e end_date do feed antigo precisam
	// chegar na listagem, não ser ignorados
	mockService.EXPECT().
		ListSales(gomock.Any(), gomock.Any()).
		DoAndReturn(func(startDate, endDate *time.Time) ([]*domain.Sale, error) {
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *startDate)
			assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), *endDate)
			return []*domain.Sale{
				{ID: 10, ClientID: 1, InstrumentID: "vl-001", SalePrice: 15000, SaleDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/sales?start_date=2024-03-01&end_date=2024-03-31", nil)
	recorder := httptest.NewRecorder()

	LegacySalesFeed(mockService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var envelope legacyEnvelope[legacydomain.SaleRow]
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, 1, envelope.Data[0].ClientID)
	assert.Equal(t, "2024-03-10", envelope.Data[0].SaleDate)
}

func TestLegacySalesFeed_InvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockSellingService(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/sales?start_date=10-03-2024", nil)
	recorder := httptest.NewRecorder()

	LegacySalesFeed(mockService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLegacySalesFeed_NoFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockSellingService(ctrl)

	var nilDate *time.Time
	mockService.EXPECT().ListSales(nilDate, nilDate).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	recorder := httptest.NewRecorder()

	LegacySalesFeed(mockService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
