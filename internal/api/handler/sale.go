package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/selling"
	"github.com/vfg2006/atelier-manager-api/pkg/apiErrors"
	"github.com/vfg2006/atelier-manager-api/pkg/utils"
)

type RefundSaleRequest struct {
	ClientID int `json:"client_id"`
}

// ListSales lista o histórico de vendas.
// Aceita os parâmetros start_date e end_date no formato 2006-01-02.
func ListSales(service selling.SellingService) http.HandlerFunc {
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

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(sales)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// RegisterSale registra uma nova venda
func RegisterSale(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterSale")

		var req *domain.CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.RegisterSale(req)
		if err != nil {
			logrus.Error(err)
			writeSellingError(w, err, "Erro ao registrar venda")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sale)
	}
}

// RefundSale registra o estorno de uma venda concluída
func RefundSale(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefundSale")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		saleID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrValidation, "ID da venda inválido", nil)
			return
		}

		var req RefundSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Erro ao decodificar requisição", nil)
			return
		}

		refund, err := service.RefundSale(saleID, req.ClientID)
		if err != nil {
			logrus.Error(err)
			writeSellingError(w, err, "Erro ao estornar venda")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(refund)
	}
}

// writeSellingError traduz os erros do serviço de vendas para a resposta HTTP
func writeSellingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, selling.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrValidation, err.Error(), nil)
	case errors.Is(err, selling.ErrInvalidSaleDate):
		apiErrors.WriteError(w, apiErrors.ErrValidation, err.Error(), nil)
	case errors.Is(err, selling.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
	case errors.Is(err, selling.ErrInstrumentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Instrumento não encontrado", nil)
	case errors.Is(err, selling.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Venda não encontrada", nil)
	case errors.Is(err, selling.ErrInstrumentSold):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Instrumento já vendido", nil)
	case errors.Is(err, selling.ErrSaleNotRefundable):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Apenas vendas concluídas podem ser estornadas", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabase, fallback, nil)
	}
}
