package domain

import "time"

// Modos de ordenação da lista de clientes com compras
type CustomerSortMode string

const (
	SortByName    CustomerSortMode = "name"
	SortBySpend   CustomerSortMode = "spend"
	SortByRecency CustomerSortMode = "recency"
)

// CustomerWithPurchases junta um cliente ao seu histórico de compras,
// com os campos agregados que a listagem exibe
type CustomerWithPurchases struct {
	Client           *Client     `json:"client"`
	Purchases        []*Purchase `json:"purchases"`
	TotalSpent       float64     `json:"total_spent"`
	PurchaseCount    int         `json:"purchase_count"`
	LastPurchaseDate *time.Time  `json:"last_purchase_date"`
}

// CustomerFilters são os filtros aceitos pela listagem de clientes
type CustomerFilters struct {
	Search string
	Sort   CustomerSortMode
	Limit  int
	Offset int
}

type CustomerListResponse struct {
	Customers []*CustomerWithPurchases `json:"customers"`
	Total     int                      `json:"total"`
	Limit     int                      `json:"limit"`
	Offset    int                      `json:"offset"`
}
