package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	legacydomain "github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore/domain"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/selling"
	"github.com/vfg2006/atelier-manager-api/pkg/apiErrors"
	"github.com/vfg2006/atelier-manager-api/pkg/utils"
)

// Envelope de resposta do sistema antigo: {"data": [...]}
type legacyEnvelope[T any] struct {
	Data []T `json:"data"`
}

// LegacySalesFeed expõe o histórico de vendas no formato do feed antigo.
// Aceita os mesmos parâmetros start_date e end_date do feed original
func LegacySalesFeed(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var startDate, endDate *time.Time
		if s := query.Get("start_date"); s != "" {
			parsed, err := utils.ParseDate(s)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrValidation, "start_date inválida. Formato esperado: 2006-01-02", nil)
				return
			}
			startDate = parsed
		}
		if s := query.Get("end_date"); s != "" {
			parsed, err := utils.ParseDate(s)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrValidation, "end_date inválida. Formato esperado: 2006-01-02", nil)
				return
			}
			endDate = parsed
		}

		sales, err := service.ListSales(startDate, endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao listar vendas", nil)
			return
		}

		rows := make([]legacydomain.SaleRow, 0, len(sales))
		for _, sale := range sales {
			rows = append(rows, legacydomain.SaleRow{
				ClientID:     sale.ClientID,
				InstrumentID: sale.InstrumentID,
				SalePrice:    sale.SalePrice,
				SaleDate:     sale.SaleDate.Format(utils.DateLayoutISO),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(legacyEnvelope[legacydomain.SaleRow]{Data: rows})
	}
}

// LegacyInstrumentsFeed expõe o estoque no formato do feed antigo
func LegacyInstrumentsFeed(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instruments, err := service.ListInstruments(nil, 0, 0)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao listar instrumentos", nil)
			return
		}

		rows := make([]legacydomain.InstrumentRow, 0, len(instruments))
		for _, instrument := range instruments {
			rows = append(rows, legacydomain.InstrumentRow{
				ID:           instrument.ID,
				Maker:        instrument.Maker,
				Type:         instrument.Type,
				Model:        instrument.Model,
				SerialNumber: instrument.SerialNumber,
				Year:         instrument.Year,
				Price:        instrument.Price,
				Sold:         instrument.Status == domain.InstrumentStatusSold,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(legacyEnvelope[legacydomain.InstrumentRow]{Data: rows})
	}
}
