package certifying

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/atelier-manager-api/internal/config"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type certifyingMocks struct {
	certificateRepo *mocks.MockCertificateRepository
	instrumentRepo  *mocks.MockInstrumentRepository
	clientRepo      *mocks.MockClientRepository
}

func newCertificateService(t *testing.T, cfg *config.Config) (CertificateService, certifyingMocks) {
	ctrl := gomock.NewController(t)

	m := certifyingMocks{
		certificateRepo: mocks.NewMockCertificateRepository(ctrl),
		instrumentRepo:  mocks.NewMockInstrumentRepository(ctrl),
		clientRepo:      mocks.NewMockClientRepository(ctrl),
	}

	return NewService(cfg, m.certificateRepo, m.instrumentRepo, m.clientRepo), m
}

func testConfig() *config.Config {
	return &config.Config{
		Certificate: config.Certificate{
			IssuerName: "Atelier de Instrumentos",
			IssuerCity: "São Paulo",
			Appraiser:  "João Luthier",
		},
	}
}

func testInstrument() *domain.Instrument {
	return &domain.Instrument{
		ID:           "vl-001",
		Maker:        "Antonio Rossi",
		Type:         "Violino",
		SerialNumber: "AR-1922",
		Year:         1922,
		Price:        25000,
		Status:       domain.InstrumentStatusAvailable,
	}
}

func TestService_IssueCertificate(t *testing.T) {
	service, m := newCertificateService(t, testConfig())

	m.instrumentRepo.EXPECT().GetInstrumentByID("vl-001").Return(testInstrument(), nil)
	m.certificateRepo.EXPECT().
		CreateCertificate(gomock.Any()).
		DoAndReturn(func(certificate *domain.Certificate) (*domain.Certificate, error) {
			assert.NotEmpty(t, certificate.ID)
			assert.Equal(t, "vl-001", certificate.InstrumentID)
			// Sem avaliador na requisição, cai no configurado
			assert.Equal(t, "João Luthier", certificate.Appraiser)
			// Sem valor na requisição, cai no preço de catálogo
			assert.Equal(t, 25000.0, certificate.AppraisedValue)
			return certificate, nil
		})

	certificate, pdf, err := service.IssueCertificate("vl-001", nil)

	assert.NoError(t, err)
	assert.NotNil(t, certificate)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestService_IssueCertificate_WithClient(t *testing.T) {
	service, m := newCertificateService(t, testConfig())

	clientID := 1
	m.instrumentRepo.EXPECT().GetInstrumentByID("vl-001").Return(testInstrument(), nil)
	m.clientRepo.EXPECT().GetClientByID(1).Return(&domain.Client{ID: 1, Name: "Ana", Lastname: "Souza"}, nil)
	m.certificateRepo.EXPECT().
		CreateCertificate(gomock.Any()).
		DoAndReturn(func(certificate *domain.Certificate) (*domain.Certificate, error) {
			assert.Equal(t, &clientID, certificate.ClientID)
			assert.Equal(t, 30000.0, certificate.AppraisedValue)
			return certificate, nil
		})

	certificate, pdf, err := service.IssueCertificate("vl-001", &domain.IssueCertificateRequest{
		ClientID:       &clientID,
		AppraisedValue: 30000,
	})

	assert.NoError(t, err)
	assert.NotNil(t, certificate)
	assert.NotEmpty(t, pdf)
}

func TestService_IssueCertificate_InstrumentNotFound(t *testing.T) {
	service, m := newCertificateService(t, testConfig())

	m.instrumentRepo.EXPECT().GetInstrumentByID("xx-999").Return(nil, nil)

	certificate, pdf, err := service.IssueCertificate("xx-999", nil)

	assert.ErrorIs(t, err, ErrInstrumentNotFound)
	assert.Nil(t, certificate)
	assert.Nil(t, pdf)
}

func TestService_IssueCertificate_MissingAppraiser(t *testing.T) {
	service, m := newCertificateService(t, &config.Config{})

	m.instrumentRepo.EXPECT().GetInstrumentByID("vl-001").Return(testInstrument(), nil)

	certificate, pdf, err := service.IssueCertificate("vl-001", nil)

	assert.ErrorIs(t, err, ErrMissingAppraiser)
	assert.Nil(t, certificate)
	assert.Nil(t, pdf)
}

func TestService_RenderCertificate(t *testing.T) {
	service, m := newCertificateService(t, testConfig())

	certificate := &domain.Certificate{
		ID:             "a1b2c3d4e5",
		InstrumentID:   "vl-001",
		Appraiser:      "João Luthier",
		AppraisedValue: 25000,
		IssuedAt:       time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}

	m.certificateRepo.EXPECT().GetCertificateByID("a1b2c3d4e5").Return(certificate, nil)
	m.instrumentRepo.EXPECT().GetInstrumentByID("vl-001").Return(testInstrument(), nil)

	pdf, err := service.RenderCertificate("a1b2c3d4e5")

	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestService_RenderCertificate_NotFound(t *testing.T) {
	service, m := newCertificateService(t, testConfig())

	m.certificateRepo.EXPECT().GetCertificateByID("nao-existe").Return(nil, nil)

	pdf, err := service.RenderCertificate("nao-existe")

	assert.ErrorIs(t, err, ErrCertificateNotFound)
	assert.Nil(t, pdf)
}
