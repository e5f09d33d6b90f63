// Package certifying emite certificados de autenticidade em PDF
package certifying

import (
	"errors"
	"time"

	"github.com/vfg2006/atelier-manager-api/infrastructure/repository"
	"github.com/vfg2006/atelier-manager-api/internal/config"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/pkg/utils"
)

var (
	ErrInstrumentNotFound  = errors.New("instrumento não encontrado")
	ErrClientNotFound      = errors.New("cliente não encontrado")
	ErrCertificateNotFound = errors.New("certificado não encontrado")
	ErrMissingAppraiser    = errors.New("avaliador responsável é obrigatório")
)

type CertificateService interface {
	IssueCertificate(instrumentID string, req *domain.IssueCertificateRequest) (*domain.Certificate, []byte, error)
	RenderCertificate(certificateID string) ([]byte, error)
	ListCertificatesByInstrumentID(instrumentID string) ([]*domain.Certificate, error)
}

type Service struct {
	cfg             *config.Config
	certificateRepo repository.CertificateRepository
	instrumentRepo  repository.InstrumentRepository
	clientRepo      repository.ClientRepository
}

func NewService(
	cfg *config.Config,
	certificateRepo repository.CertificateRepository,
	instrumentRepo repository.InstrumentRepository,
	clientRepo repository.ClientRepository,
) CertificateService {
	return &Service{
		cfg:             cfg,
		certificateRepo: certificateRepo,
		instrumentRepo:  instrumentRepo,
		clientRepo:      clientRepo,
	}
}

// IssueCertificate registra a emissão e devolve o PDF renderizado.
// O valor de avaliação, quando não informado, cai no preço de catálogo
func (s *Service) IssueCertificate(instrumentID string, req *domain.IssueCertificateRequest) (*domain.Certificate, []byte, error) {
	if req == nil {
		req = &domain.IssueCertificateRequest{}
	}

	instrument, err := s.instrumentRepo.GetInstrumentByID(instrumentID)
	if err != nil {
		return nil, nil, err
	}
	if instrument == nil {
		return nil, nil, ErrInstrumentNotFound
	}

	var clientName string
	if req.ClientID != nil {
		client, err := s.clientRepo.GetClientByID(*req.ClientID)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, ErrClientNotFound
		}
		clientName = client.Name + " " + client.Lastname
	}

	appraiser := req.Appraiser
	if appraiser == "" {
		appraiser = s.cfg.Certificate.Appraiser
	}
	if appraiser == "" {
		return nil, nil, ErrMissingAppraiser
	}

	appraisedValue := req.AppraisedValue
	if appraisedValue == 0 {
		appraisedValue = instrument.Price
	}

	number, err := utils.GenerateID()
	if err != nil {
		return nil, nil, err
	}

	certificate := &domain.Certificate{
		ID:             number,
		InstrumentID:   instrument.ID,
		ClientID:       req.ClientID,
		Appraiser:      appraiser,
		AppraisedValue: appraisedValue,
		Notes:          req.Notes,
		IssuedAt:       time.Now(),
	}

	certificate, err = s.certificateRepo.CreateCertificate(certificate)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := s.render(certificate, instrument, clientName)
	if err != nil {
		return nil, nil, err
	}

	return certificate, pdf, nil
}

// RenderCertificate gera novamente o PDF de um certificado já emitido
func (s *Service) RenderCertificate(certificateID string) ([]byte, error) {
	certificate, err := s.certificateRepo.GetCertificateByID(certificateID)
	if err != nil {
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	instrument, err := s.instrumentRepo.GetInstrumentByID(certificate.InstrumentID)
	if err != nil {
		return nil, err
	}
	if instrument == nil {
		return nil, ErrInstrumentNotFound
	}

	var clientName string
	if certificate.ClientID != nil {
		client, err := s.clientRepo.GetClientByID(*certificate.ClientID)
		if err != nil {
			return nil, err
		}
		if client != nil {
			clientName = client.Name + " " + client.Lastname
		}
	}

	return s.render(certificate, instrument, clientName)
}

func (s *Service) ListCertificatesByInstrumentID(instrumentID string) ([]*domain.Certificate, error) {
	return s.certificateRepo.ListCertificatesByInstrumentID(instrumentID)
}

func (s *Service) render(
	certificate *domain.Certificate,
	instrument *domain.Instrument,
	clientName string,
) ([]byte, error) {
	data := certificateData{
		Number:         certificate.ID,
		IssuerName:     s.cfg.Certificate.IssuerName,
		IssuerCity:     s.cfg.Certificate.IssuerCity,
		Appraiser:      certificate.Appraiser,
		IssuedAt:       certificate.IssuedAt,
		InstrumentName: instrument.DisplayName(),
		Maker:          instrument.Maker,
		Type:           instrument.Type,
		Model:          instrument.Model,
		SerialNumber:   instrument.SerialNumber,
		Year:           instrument.Year,
		AppraisedValue: certificate.AppraisedValue,
		ClientName:     clientName,
		Notes:          certificate.Notes,
	}

	return renderPDF(buildSections(data))
}
