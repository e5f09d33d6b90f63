package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/clienting"
	"github.com/vfg2006/atelier-manager-api/pkg/apiErrors"
)

// ListClients lista os clientes cadastrados
func ListClients(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao listar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(clients)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateClient cadastra um novo cliente
func CreateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClient")

		var client *domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.CreateClient(client)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, clienting.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrValidation, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao cadastrar cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client)
	}
}

// GetClient retorna um cliente por ID
func GetClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := clientIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrValidation, "ID do cliente inválido", nil)
			return
		}

		client, err := service.GetClientByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao buscar cliente", nil)
			return
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client)
	}
}

// UpdateClient atualiza os dados de um cliente
func UpdateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateClient")

		id, err := clientIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrValidation, "ID do cliente inválido", nil)
			return
		}

		var req domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = id

		client, err := service.UpdateClient(&req)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, clienting.ErrClientNotFound):
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
			case errors.Is(err, clienting.ErrMissingRequiredData):
				apiErrors.WriteError(w, apiErrors.ErrValidation, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao atualizar cliente", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client)
	}
}

// DeleteClient remove um cliente (soft delete)
func DeleteClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteClient")

		id, err := clientIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrValidation, "ID do cliente inválido", nil)
			return
		}

		if err := service.DeleteClient(id); err != nil {
			logrus.Error(err)

			if errors.Is(err, clienting.ErrClientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao remover cliente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func clientIDFromRequest(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(idStr)
}
