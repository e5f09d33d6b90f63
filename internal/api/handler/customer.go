package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/customering"
	"github.com/vfg2006/atelier-manager-api/pkg/apiErrors"
)

var (
	errInvalidSortMode   = errors.New("ordenação inválida. Valores aceitos: name, spend, recency")
	errInvalidPagination = errors.New("limit e offset devem ser inteiros não negativos")
)

var validSortModes = map[domain.CustomerSortMode]struct{}{
	domain.SortByName:    {},
	domain.SortBySpend:   {},
	domain.SortByRecency: {},
}

// ListCustomers retorna os clientes com seus históricos de compra.
// Aceita os parâmetros search, sort (name, spend, recency), limit e offset.
func ListCustomers(service customering.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := customerFiltersFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrValidation, err.Error(), nil)
			return
		}

		response, err := service.ListCustomers(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao listar clientes com histórico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetCustomer retorna um cliente com seu histórico de compras
func GetCustomer(service customering.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrValidation, "ID do cliente inválido", nil)
			return
		}

		customer, err := service.GetCustomerByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao buscar cliente", nil)
			return
		}

		if customer == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(customer)
	}
}

func customerFiltersFromRequest(r *http.Request) (*domain.CustomerFilters, error) {
	query := r.URL.Query()

	filters := &domain.CustomerFilters{
		Search: query.Get("search"),
		Sort:   domain.SortByName,
	}

	if sortStr := query.Get("sort"); sortStr != "" {
		sort := domain.CustomerSortMode(sortStr)
		if _, ok := validSortModes[sort]; !ok {
			return nil, errInvalidSortMode
		}
		filters.Sort = sort
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return nil, errInvalidPagination
		}
		filters.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return nil, errInvalidPagination
		}
		filters.Offset = offset
	}

	return filters, nil
}
