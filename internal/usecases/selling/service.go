// Package selling registra vendas e estornos de instrumentos
package selling

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/pkg/utils"
)

var (
	ErrMissingRequiredData = errors.New("cliente, instrumento e data da venda são obrigatórios")
	ErrInvalidSaleDate     = errors.New("data da venda inválida, formato esperado 2006-01-02")
	ErrClientNotFound      = errors.New("cliente não encontrado")
	ErrInstrumentNotFound  = errors.New("instrumento não encontrado")
	ErrInstrumentSold      = errors.New("instrumento já vendido")
	ErrSaleNotFound        = errors.New("venda não encontrada")
	ErrSaleNotRefundable   = errors.New("apenas vendas concluídas podem ser estornadas")
)

type SellingService interface {
	RegisterSale(req *domain.CreateSaleRequest) (*domain.Sale, error)
	RefundSale(saleID, clientID int) (*domain.Sale, error)
	ListSales(startDate, endDate *time.Time) ([]*domain.Sale, error)
}

type Service struct {
	saleRepo       repository.SaleRepository
	clientRepo     repository.ClientRepository
	instrumentRepo repository.InstrumentRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	instrumentRepo repository.InstrumentRepository,
) SellingService {
	return &Service{
		saleRepo:       saleRepo,
		clientRepo:     clientRepo,
		instrumentRepo: instrumentRepo,
	}
}

// RegisterSale registra uma venda e marca o instrumento como vendido
func (s *Service) RegisterSale(req *domain.CreateSaleRequest) (*domain.Sale, error) {
	if req.ClientID == 0 || req.InstrumentID == "" || req.SaleDate == "" {
		return nil, ErrMissingRequiredData
	}

	saleDate, err := time.Parse(utils.DateLayoutISO, req.SaleDate)
	if err != nil {
		return nil, ErrInvalidSaleDate
	}

	client, err := s.clientRepo.GetClientByID(req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	instrument, err := s.instrumentRepo.GetInstrumentByID(req.InstrumentID)
	if err != nil {
		return nil, err
	}
	if instrument == nil {
		return nil, ErrInstrumentNotFound
	}
	if instrument.Status == domain.InstrumentStatusSold {
		return nil, ErrInstrumentSold
	}

	salePrice := req.SalePrice
	if salePrice == 0 {
		// Venda sem valor acertado entra como pendente pelo preço de
		// catálogo zerado; o sinal do valor define o status depois
		logrus.WithField("instrument_id", instrument.ID).Info("Venda registrada como pendente")
	}

	sale, err := s.saleRepo.CreateSale(&domain.Sale{
		ClientID:     req.ClientID,
		InstrumentID: req.InstrumentID,
		SalePrice:    salePrice,
		SaleDate:     saleDate,
	})
	if err != nil {
		return nil, err
	}

	instrument.Status = domain.InstrumentStatusSold
	if err := s.instrumentRepo.UpdateInstrument(instrument); err != nil {
		// A venda já foi registrada; o status do instrumento fica para
		// a próxima sincronização corrigir
		logrus.WithError(err).Warnf("Erro ao marcar instrumento %s como vendido", instrument.ID)
	}

	return sale, nil
}

// RefundSale estorna uma venda inserindo uma linha de valor negativo
// (a convenção de sinal do histórico) e devolve o instrumento ao estoque
func (s *Service) RefundSale(saleID, clientID int) (*domain.Sale, error) {
	sales, err := s.saleRepo.ListSalesByClientID(clientID)
	if err != nil {
		return nil, err
	}

	var original *domain.Sale
	for _, sale := range sales {
		if sale.ID == saleID {
			original = sale
			break
		}
	}

	if original == nil {
		return nil, ErrSaleNotFound
	}

	if domain.StatusFromPrice(original.SalePrice) != domain.PurchaseStatusCompleted {
		return nil, ErrSaleNotRefundable
	}

	// Um estorno por venda: se o histórico já tem a linha negativa
	// correspondente, não há o que estornar de novo
	for _, sale := range sales {
		if sale.InstrumentID == original.InstrumentID && sale.SalePrice == -original.SalePrice {
			return nil, ErrSaleNotRefundable
		}
	}

	refund, err := s.saleRepo.CreateSale(&domain.Sale{
		ClientID:     original.ClientID,
		InstrumentID: original.InstrumentID,
		SalePrice:    -original.SalePrice,
		SaleDate:     time.Now(),
	})
	if err != nil {
		return nil, err
	}

	instrument, err := s.instrumentRepo.GetInstrumentByID(original.InstrumentID)
	if err == nil && instrument != nil {
		instrument.Status = domain.InstrumentStatusAvailable
		if err := s.instrumentRepo.UpdateInstrument(instrument); err != nil {
			logrus.WithError(err).Warnf("Erro ao devolver instrumento %s ao estoque", instrument.ID)
		}
	}

	return refund, nil
}

func (s *Service) ListSales(startDate, endDate *time.Time) ([]*domain.Sale, error) {
	return s.saleRepo.ListSales(startDate, endDate)
}
