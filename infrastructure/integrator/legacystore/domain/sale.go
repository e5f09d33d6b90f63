// Package domain descreve o formato dos feeds expostos pelo sistema
// antigo da loja
package domain

// SaleRow é uma linha do feed GET /api/sales
type SaleRow struct {
	ClientID     int     `json:"client_id"`
	InstrumentID string  `json:"instrument_id"`
	SalePrice    float64 `json:"sale_price"`
	SaleDate     string  `json:"sale_date"` // formato 2006-01-02
}
