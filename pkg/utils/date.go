package utils

import "time"

const (
	// Formato de data usado nos parâmetros de consulta (ISO)
	DateLayoutISO = "2006-01-02"
	// Formato de data usado em documentos impressos
	DateLayoutBR = "02/01/2006"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayoutISO, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDateBR formata a data no padrão brasileiro (dd/mm/aaaa)
func FormatDateBR(date time.Time) string {
	return date.Format(DateLayoutBR)
}

// MostRecent retorna a data mais recente entre as duas (nil é tratado como ausente)
func MostRecent(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.After(*a) {
		return b
	}
	return a
}
