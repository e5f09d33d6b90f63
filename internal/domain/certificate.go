package domain

import "time"

// Certificate registra a emissão de um certificado de autenticidade.
// O ID é o número impresso no documento.
type Certificate struct {
	ID             string    `json:"id"`
	InstrumentID   string    `json:"instrument_id"`
	ClientID       *int      `json:"client_id"`
	Appraiser      string    `json:"appraiser"`
	AppraisedValue float64   `json:"appraised_value"`
	Notes          string    `json:"notes"`
	IssuedAt       time.Time `json:"issued_at"`
}

type IssueCertificateRequest struct {
	ClientID       *int    `json:"client_id"`
	Appraiser      string  `json:"appraiser"`
	AppraisedValue float64 `json:"appraised_value"`
	Notes          string  `json:"notes"`
}
