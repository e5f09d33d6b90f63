package legacyclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/atelier-manager-api/internal/config"
)

type Client interface {
	GetSales(params SalesConsultationParams) (SalesConsultationResponse, error)
	GetInstruments() (InstrumentsConsultationResponse, error)
}

type LegacyStoreClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do sistema antigo
func NewClient(cfg *config.Config) Client {
	return &LegacyStoreClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
