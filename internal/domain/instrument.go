package domain

import "time"

type InstrumentStatus string

const (
	InstrumentStatusAvailable InstrumentStatus = "available"
	InstrumentStatusReserved  InstrumentStatus = "reserved"
	InstrumentStatusSold      InstrumentStatus = "sold"
)

// Instrument representa um item do estoque da loja
type Instrument struct {
	ID           string           `json:"id"`
	Maker        string           `json:"maker"`
	Type         string           `json:"type"`
	Model        string           `json:"model"`
	SerialNumber string           `json:"serial_number"`
	Year         int              `json:"year"`
	Price        float64          `json:"price"`
	Status       InstrumentStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type UpdateInstrumentRequest struct {
	ID           string            `json:"id"`
	Maker        *string           `json:"maker"`
	Type         *string           `json:"type"`
	Model        *string           `json:"model"`
	SerialNumber *string           `json:"serial_number"`
	Year         *int              `json:"year"`
	Price        *float64          `json:"price"`
	Status       *InstrumentStatus `json:"status"`
}

// DisplayName monta o nome usado em listagens e no certificado
// (ex: "Violino Antonio Stradivari, nº de série 1715")
func (i *Instrument) DisplayName() string {
	name := i.Type + " " + i.Maker
	if i.SerialNumber != "" {
		name += ", nº de série " + i.SerialNumber
	}
	return name
}
