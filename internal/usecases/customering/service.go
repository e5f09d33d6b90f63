// Package customering agrega clientes e histórico de vendas na visão
// usada pela listagem de clientes do back office
package customering

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/pkg/utils"
)

const DefaultLimit = 50

type CustomerService interface {
	ListCustomers(filters *domain.CustomerFilters) (*domain.CustomerListResponse, error)
	GetCustomerByID(clientID int) (*domain.CustomerWithPurchases, error)
}

type Service struct {
	clientRepo     repository.ClientRepository
	saleRepo       repository.SaleRepository
	instrumentRepo repository.InstrumentRepository
}

func NewService(
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
	instrumentRepo repository.InstrumentRepository,
) CustomerService {
	return &Service{
		clientRepo:     clientRepo,
		saleRepo:       saleRepo,
		instrumentRepo: instrumentRepo,
	}
}

// ListCustomers monta a lista de clientes com compras agregadas.
// Clientes e vendas são buscados de forma independente e juntados em
// memória; vendas sem cliente correspondente são descartadas
func (s *Service) ListCustomers(filters *domain.CustomerFilters) (*domain.CustomerListResponse, error) {
	if filters == nil {
		filters = &domain.CustomerFilters{}
	}

	clients, err := s.clientRepo.ListClients()
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListSales(nil, nil)
	if err != nil {
		return nil, err
	}

	instrumentNames, err := s.instrumentNames()
	if err != nil {
		return nil, err
	}

	// Agrupa as vendas por cliente em uma única passada
	salesByClient := make(map[int][]*domain.Sale)
	for _, sale := range sales {
		salesByClient[sale.ClientID] = append(salesByClient[sale.ClientID], sale)
	}

	customers := make([]*domain.CustomerWithPurchases, 0, len(clients))
	for _, client := range clients {
		customers = append(customers, buildCustomer(client, salesByClient[client.ID], instrumentNames))
	}

	customers = filterCustomers(customers, filters.Search)
	sortCustomers(customers, filters.Sort)

	total := len(customers)
	customers = paginate(customers, filters.Limit, filters.Offset)

	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &domain.CustomerListResponse{
		Customers: customers,
		Total:     total,
		Limit:     limit,
		Offset:    filters.Offset,
	}, nil
}

// GetCustomerByID monta a visão agregada de um único cliente
func (s *Service) GetCustomerByID(clientID int) (*domain.CustomerWithPurchases, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, nil
	}

	sales, err := s.saleRepo.ListSalesByClientID(clientID)
	if err != nil {
		return nil, err
	}

	instrumentNames, err := s.instrumentNames()
	if err != nil {
		return nil, err
	}

	return buildCustomer(client, sales, instrumentNames), nil
}

// instrumentNames monta o mapa id -> nome de exibição usado para resolver
// o nome do instrumento em cada compra
func (s *Service) instrumentNames() (map[string]string, error) {
	instruments, err := s.instrumentRepo.ListInstruments(nil, 0, 0)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(instruments))
	for _, instrument := range instruments {
		names[instrument.ID] = instrument.DisplayName()
	}

	return names, nil
}

func buildCustomer(
	client *domain.Client,
	sales []*domain.Sale,
	instrumentNames map[string]string,
) *domain.CustomerWithPurchases {
	customer := &domain.CustomerWithPurchases{
		Client:    client,
		Purchases: make([]*domain.Purchase, 0, len(sales)),
	}

	for _, sale := range sales {
		name, ok := instrumentNames[sale.InstrumentID]
		if !ok {
			// Venda importada antes do instrumento: mantém a compra,
			// só sem o nome resolvido
			logrus.Warnf("Instrumento %s não encontrado para a venda %d", sale.InstrumentID, sale.ID)
		}

		saleDate := sale.SaleDate
		customer.Purchases = append(customer.Purchases, &domain.Purchase{
			SaleID:         sale.ID,
			InstrumentID:   sale.InstrumentID,
			InstrumentName: name,
			SalePrice:      sale.SalePrice,
			SaleDate:       saleDate,
			Status:         domain.StatusFromPrice(sale.SalePrice),
		})

		customer.TotalSpent += sale.SalePrice
		customer.LastPurchaseDate = utils.MostRecent(customer.LastPurchaseDate, &saleDate)
	}

	customer.TotalSpent = utils.RoundWithTwoDecimalPlace(customer.TotalSpent)
	customer.PurchaseCount = len(customer.Purchases)

	return customer
}

// filterCustomers aplica a busca por substring em nome, sobrenome e email
func filterCustomers(customers []*domain.CustomerWithPurchases, search string) []*domain.CustomerWithPurchases {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return customers
	}

	filtered := make([]*domain.CustomerWithPurchases, 0, len(customers))
	for _, customer := range customers {
		haystack := strings.ToLower(
			customer.Client.Name + " " + customer.Client.Lastname + " " + customer.Client.Email,
		)
		if strings.Contains(haystack, search) {
			filtered = append(filtered, customer)
		}
	}

	return filtered
}

// sortCustomers ordena a lista conforme o modo escolhido
func sortCustomers(customers []*domain.CustomerWithPurchases, mode domain.CustomerSortMode) {
	byName := func(a, b *domain.CustomerWithPurchases) bool {
		nameA := strings.ToLower(a.Client.Name + " " + a.Client.Lastname)
		nameB := strings.ToLower(b.Client.Name + " " + b.Client.Lastname)
		return nameA < nameB
	}

	switch mode {
	case domain.SortBySpend:
		sort.SliceStable(customers, func(i, j int) bool {
			if customers[i].TotalSpent != customers[j].TotalSpent {
				return customers[i].TotalSpent > customers[j].TotalSpent
			}
			return byName(customers[i], customers[j])
		})
	case domain.SortByRecency:
		sort.SliceStable(customers, func(i, j int) bool {
			a, b := customers[i].LastPurchaseDate, customers[j].LastPurchaseDate
			// Clientes sem compras vão para o fim da lista
			if a == nil && b == nil {
				return byName(customers[i], customers[j])
			}
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			if !a.Equal(*b) {
				return a.After(*b)
			}
			return byName(customers[i], customers[j])
		})
	default:
		sort.SliceStable(customers, func(i, j int) bool {
			return byName(customers[i], customers[j])
		})
	}
}

func paginate(customers []*domain.CustomerWithPurchases, limit, offset int) []*domain.CustomerWithPurchases {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if offset < 0 {
		offset = 0
	}

	if offset >= len(customers) {
		return []*domain.CustomerWithPurchases{}
	}

	end := offset + limit
	if end > len(customers) {
		end = len(customers)
	}

	return customers[offset:end]
}
