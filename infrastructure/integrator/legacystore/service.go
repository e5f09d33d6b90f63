// Package legacystore integra com a API do sistema antigo da loja,
// que ainda é a origem dos feeds de vendas e de instrumentos
package legacystore

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore/legacyclient"
	"github.com/vfg2006/atelier-manager-api/internal/config"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/pkg/utils"
)

type LegacyStoreIntegrator interface {
	GetSalesByPeriod(startDate, endDate time.Time) ([]*domain.Sale, error)
	GetInstruments() ([]*domain.Instrument, error)
}

type Integrator struct {
	cfg    *config.Config
	client legacyclient.Client
}

func New(cfg *config.Config, client legacyclient.Client) LegacyStoreIntegrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

// GetSalesByPeriod busca as vendas do período no feed do sistema antigo
// e converte para o domínio interno. Linhas com data inválida são
// descartadas com aviso, sem interromper a importação
func (i *Integrator) GetSalesByPeriod(startDate, endDate time.Time) ([]*domain.Sale, error) {
	response, err := i.client.GetSales(legacyclient.SalesConsultationParams{
		StartDate: startDate.Format(utils.DateLayoutISO),
		EndDate:   endDate.Format(utils.DateLayoutISO),
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar feed de vendas do sistema antigo")
	}

	logrus.WithField("rows", len(response.Data)).Debug("Feed de vendas recebido")

	sales := make([]*domain.Sale, 0, len(response.Data))
	for _, row := range response.Data {
		saleDate, err := time.Parse(utils.DateLayoutISO, row.SaleDate)
		if err != nil {
			logrus.WithError(err).Warnf("Venda com data inválida ignorada: %s", utils.PrettyJson(row))
			continue
		}

		sales = append(sales, &domain.Sale{
			ClientID:     row.ClientID,
			InstrumentID: row.InstrumentID,
			SalePrice:    row.SalePrice,
			SaleDate:     saleDate,
		})
	}

	return sales, nil
}

// GetInstruments busca o feed completo de instrumentos do sistema antigo
func (i *Integrator) GetInstruments() ([]*domain.Instrument, error) {
	response, err := i.client.GetInstruments()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar feed de instrumentos do sistema antigo")
	}

	logrus.WithField("rows", len(response.Data)).Debug("Feed de instrumentos recebido")

	instruments := make([]*domain.Instrument, 0, len(response.Data))
	for _, row := range response.Data {
		status := domain.InstrumentStatusAvailable
		if row.Sold {
			status = domain.InstrumentStatusSold
		}

		id := row.ID
		if id == "" {
			id, err = utils.GenerateID()
			if err != nil {
				return nil, errors.Wrap(err, "erro ao gerar ID de instrumento")
			}
		}

		instruments = append(instruments, &domain.Instrument{
			ID:           id,
			Maker:        row.Maker,
			Type:         row.Type,
			Model:        row.Model,
			SerialNumber: row.SerialNumber,
			Year:         row.Year,
			Price:        row.Price,
			Status:       status,
		})
	}

	return instruments, nil
}
