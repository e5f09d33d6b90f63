// Package inventorying gerencia o estoque de instrumentos da loja
package inventorying

import (
	"database/sql"
	"errors"

	"github.com/vfg2006/atelier-manager-api/infrastructure/repository"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/pkg/utils"
)

var (
	ErrMissingRequiredData   = errors.New("fabricante, tipo e número de série são obrigatórios")
	ErrInstrumentNotFound    = errors.New("instrumento não encontrado")
	ErrDuplicateSerialNumber = errors.New("número de série já cadastrado")
	ErrInstrumentAlreadySold = errors.New("instrumento já vendido")
	ErrInvalidPrice          = errors.New("preço não pode ser negativo")
)

type InventoryService interface {
	CreateInstrument(instrument *domain.Instrument) (*domain.Instrument, error)
	UpdateInstrument(req *domain.UpdateInstrumentRequest) (*domain.Instrument, error)
	GetInstrumentByID(instrumentID string) (*domain.Instrument, error)
	ListInstruments(status []domain.InstrumentStatus, limit, offset int) ([]*domain.Instrument, error)
	DeleteInstrument(instrumentID string) error
}

type Service struct {
	instrumentRepo repository.InstrumentRepository
}

func NewService(instrumentRepo repository.InstrumentRepository) InventoryService {
	return &Service{
		instrumentRepo: instrumentRepo,
	}
}

func (s *Service) CreateInstrument(instrument *domain.Instrument) (*domain.Instrument, error) {
	if instrument.Maker == "" || instrument.Type == "" || instrument.SerialNumber == "" {
		return nil, ErrMissingRequiredData
	}

	if instrument.Price < 0 {
		return nil, ErrInvalidPrice
	}

	if instrument.Status == "" {
		instrument.Status = domain.InstrumentStatusAvailable
	}

	existing, err := s.instrumentRepo.GetInstrumentBySerialNumber(instrument.SerialNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateSerialNumber
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	instrument.ID = id

	instrument, err = s.instrumentRepo.CreateInstrument(instrument)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSerialNumber) {
			return nil, ErrDuplicateSerialNumber
		}
		return nil, err
	}

	return instrument, nil
}

func (s *Service) UpdateInstrument(req *domain.UpdateInstrumentRequest) (*domain.Instrument, error) {
	if req.ID == "" {
		return nil, ErrMissingRequiredData
	}

	instrument, err := s.instrumentRepo.GetInstrumentByID(req.ID)
	if err != nil {
		return nil, err
	}
	if instrument == nil {
		return nil, ErrInstrumentNotFound
	}

	if req.Maker != nil {
		instrument.Maker = *req.Maker
	}

	if req.Type != nil {
		instrument.Type = *req.Type
	}

	if req.Model != nil {
		instrument.Model = *req.Model
	}

	if req.SerialNumber != nil {
		instrument.SerialNumber = *req.SerialNumber
	}

	if req.Year != nil {
		instrument.Year = *req.Year
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		instrument.Price = *req.Price
	}

	if req.Status != nil {
		instrument.Status = *req.Status
	}

	if err := s.instrumentRepo.UpdateInstrument(instrument); err != nil {
		if errors.Is(err, repository.ErrDuplicateSerialNumber) {
			return nil, ErrDuplicateSerialNumber
		}
		return nil, err
	}

	return instrument, nil
}

func (s *Service) GetInstrumentByID(instrumentID string) (*domain.Instrument, error) {
	return s.instrumentRepo.GetInstrumentByID(instrumentID)
}

func (s *Service) ListInstruments(status []domain.InstrumentStatus, limit, offset int) ([]*domain.Instrument, error) {
	return s.instrumentRepo.ListInstruments(status, limit, offset)
}

func (s *Service) DeleteInstrument(instrumentID string) error {
	instrument, err := s.instrumentRepo.GetInstrumentByID(instrumentID)
	if err != nil {
		return err
	}
	if instrument == nil {
		return ErrInstrumentNotFound
	}

	// Instrumentos vendidos não podem ser removidos do catálogo:
	// o histórico de vendas aponta para eles
	if instrument.Status == domain.InstrumentStatusSold {
		return ErrInstrumentAlreadySold
	}

	if err := s.instrumentRepo.DeleteInstrument(instrumentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInstrumentNotFound
		}
		return err
	}

	return nil
}
