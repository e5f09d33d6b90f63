package domain

import "time"

// Sale representa uma linha do histórico de vendas.
// Valores negativos registram estornos; zero, vendas pendentes.
type Sale struct {
	ID           int       `json:"id"`
	ClientID     int       `json:"client_id"`
	InstrumentID string    `json:"instrument_id"`
	SalePrice    float64   `json:"sale_price"`
	SaleDate     time.Time `json:"sale_date"`
	CreatedAt    time.Time `json:"created_at"`
}

type PurchaseStatus string

const (
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusRefunded  PurchaseStatus = "refunded"
	PurchaseStatusPending   PurchaseStatus = "pending"
)

// StatusFromPrice deriva o status da compra a partir do sinal do valor
func StatusFromPrice(price float64) PurchaseStatus {
	switch {
	case price > 0:
		return PurchaseStatusCompleted
	case price < 0:
		return PurchaseStatusRefunded
	default:
		return PurchaseStatusPending
	}
}

// Purchase é a visão de uma venda com o nome do instrumento resolvido,
// usada na lista de compras de cada cliente
type Purchase struct {
	SaleID         int            `json:"sale_id"`
	InstrumentID   string         `json:"instrument_id"`
	InstrumentName string         `json:"instrument_name"`
	SalePrice      float64        `json:"sale_price"`
	SaleDate       time.Time      `json:"sale_date"`
	Status         PurchaseStatus `json:"status"`
}

type CreateSaleRequest struct {
	ClientID     int     `json:"client_id"`
	InstrumentID string  `json:"instrument_id"`
	SalePrice    float64 `json:"sale_price"`
	SaleDate     string  `json:"sale_date"` // formato 2006-01-02
}
