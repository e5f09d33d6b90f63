package domain

// InstrumentRow é uma linha do feed GET /api/instruments
type InstrumentRow struct {
	ID           string  `json:"id"`
	Maker        string  `json:"maker"`
	Type         string  `json:"type"`
	Model        string  `json:"model"`
	SerialNumber string  `json:"serial_number"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	Sold         bool    `json:"sold"`
}
