package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/atelier-manager-api/pkg/apiErrors"
)

// ListInstruments lista os instrumentos do estoque.
// Aceita os parâmetros status (repetível), limit e offset.
func ListInstruments(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var statuses []domain.InstrumentStatus
		for _, s := range query["status"] {
			statuses = append(statuses, domain.InstrumentStatus(s))
		}

		limit, offset := 0, 0
		if limitStr := query.Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrValidation, "limit deve ser um inteiro não negativo", nil)
				return
			}
			limit = parsed
		}
		if offsetStr := query.Get("offset"); offsetStr != "" {
			parsed, err := strconv.Atoi(offsetStr)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrValidation, "offset deve ser um inteiro não negativo", nil)
				return
			}
			offset = parsed
		}

		instruments, err := service.ListInstruments(statuses, limit, offset)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao listar instrumentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(instruments)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateInstrument cadastra um novo instrumento no estoque
func CreateInstrument(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateInstrument")

		var instrument *domain.Instrument
		if err := json.NewDecoder(r.Body).Decode(&instrument); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Erro ao decodificar requisição", nil)
			return
		}

		instrument, err := service.CreateInstrument(instrument)
		if err != nil {
			logrus.Error(err)
			writeInventoryError(w, err, "Erro ao cadastrar instrumento")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(instrument)
	}
}

// GetInstrument retorna um instrumento por ID
func GetInstrument(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		instrument, err := service.GetInstrumentByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao buscar instrumento", nil)
			return
		}

		if instrument == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Instrumento não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(instrument)
	}
}

// UpdateInstrument atualiza os dados de um instrumento
func UpdateInstrument(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateInstrument")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateInstrumentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = id

		instrument, err := service.UpdateInstrument(&req)
		if err != nil {
			logrus.Error(err)
			writeInventoryError(w, err, "Erro ao atualizar instrumento")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(instrument)
	}
}

// DeleteInstrument remove um instrumento do estoque
func DeleteInstrument(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteInstrument")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteInstrument(id); err != nil {
			logrus.Error(err)
			writeInventoryError(w, err, "Erro ao remover instrumento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeInventoryError traduz os erros do serviço de estoque para a resposta HTTP
func writeInventoryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, inventorying.ErrInstrumentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Instrumento não encontrado", nil)
	case errors.Is(err, inventorying.ErrDuplicateSerialNumber):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Número de série já cadastrado", nil)
	case errors.Is(err, inventorying.ErrMissingRequiredData),
		errors.Is(err, inventorying.ErrInvalidPrice):
		apiErrors.WriteError(w, apiErrors.ErrValidation, err.Error(), nil)
	case errors.Is(err, inventorying.ErrInstrumentAlreadySold):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Instrumento já vendido não pode ser removido", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabase, fallback, nil)
	}
}
