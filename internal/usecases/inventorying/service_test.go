package inventorying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newInventoryService(t *testing.T) (InventoryService, *mocks.MockInstrumentRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockInstrumentRepository(ctrl)
	return NewService(mockRepo), mockRepo
}

func TestService_CreateInstrument(t *testing.T) {
	service, mockRepo := newInventoryService(t)

	mockRepo.EXPECT().GetInstrumentBySerialNumber("AR-1922").Return(nil, nil)
	mockRepo.EXPECT().
		CreateInstrument(gomock.Any()).
		DoAndReturn(func(instrument *domain.Instrument) (*domain.Instrument, error) {
			assert.NotEmpty(t, instrument.ID)
			assert.Equal(t, domain.InstrumentStatusAvailable, instrument.Status)
			return instrument, nil
		})

	instrument, err := service.CreateInstrument(&domain.Instrument{
		Maker:        "Antonio Rossi",
		Type:         "Violino",
		SerialNumber: "AR-1922",
		Price:        25000,
	})

	assert.NoError(t, err)
	assert.NotNil(t, instrument)
}

func TestService_CreateInstrument_Validation(t *testing.T) {
	tests := []struct {
		name       string
		instrument *domain.Instrument
		expected   error
	}{
		{
			name:       "Sem fabricante",
			instrument: &domain.Instrument{Type: "Violino", SerialNumber: "AR-1922"},
			expected:   ErrMissingRequiredData,
		},
		{
			name:       "Sem número de série",
			instrument: &domain.Instrument{Maker: "Antonio Rossi", Type: "Violino"},
			expected:   ErrMissingRequiredData,
		},
		{
			name:       "Preço negativo",
			instrument: &domain.Instrument{Maker: "Antonio Rossi", Type: "Violino", SerialNumber: "AR-1922", Price: -1},
			expected:   ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newInventoryService(t)

			instrument, err := service.CreateInstrument(tt.instrument)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, instrument)
		})
	}
}

func TestService_CreateInstrument_DuplicateSerialNumber(t *testing.T) {
	service, mockRepo := newInventoryService(t)

	// O número de série já existe no catálogo: a criação é barrada
	// antes de chegar ao insert
	mockRepo.EXPECT().
		GetInstrumentBySerialNumber("AR-1922").
		Return(&domain.Instrument{ID: "vl-001", SerialNumber: "AR-1922"}, nil)

	instrument, err := service.CreateInstrument(&domain.Instrument{
		Maker:        "Antonio Rossi",
		Type:         "Violino",
		SerialNumber: "AR-1922",
	})

	assert.ErrorIs(t, err, ErrDuplicateSerialNumber)
	assert.Nil(t, instrument)
}

func TestService_CreateInstrument_DuplicateSerialNumberOnInsert(t *testing.T) {
	service, mockRepo := newInventoryService(t)

	// Corrida entre a checagem e o insert: a violação de unicidade do
	// banco ainda é traduzida para o erro do serviço
	mockRepo.EXPECT().GetInstrumentBySerialNumber("AR-1922").Return(nil, nil)
	mockRepo.EXPECT().
		CreateInstrument(gomock.Any()).
		Return(nil, repository.ErrDuplicateSerialNumber)

	instrument, err := service.CreateInstrument(&domain.Instrument{
		Maker:        "Antonio Rossi",
		Type:         "Violino",
		SerialNumber: "AR-1922",
	})

	assert.ErrorIs(t, err, ErrDuplicateSerialNumber)
	assert.Nil(t, instrument)
}

func TestService_UpdateInstrument(t *testing.T) {
	service, mockRepo := newInventoryService(t)

	existing := &domain.Instrument{
		ID:           "vl-001",
		Maker:        "Antonio Rossi",
		Type:         "Violino",
		SerialNumber: "AR-1922",
		Price:        25000,
		Status:       domain.InstrumentStatusAvailable,
	}

	newPrice := 27500.0
	newStatus := domain.InstrumentStatusReserved

	mockRepo.EXPECT().GetInstrumentByID("vl-001").Return(existing, nil)
	mockRepo.EXPECT().
		UpdateInstrument(gomock.Any()).
		DoAndReturn(func(instrument *domain.Instrument) error {
			assert.Equal(t, 27500.0, instrument.Price)
			assert.Equal(t, domain.InstrumentStatusReserved, instrument.Status)
			// Campos não informados permanecem intactos
			assert.Equal(t, "Antonio Rossi", instrument.Maker)
			return nil
		})

	instrument, err := service.UpdateInstrument(&domain.UpdateInstrumentRequest{
		ID:     "vl-001",
		Price:  &newPrice,
		Status: &newStatus,
	})

	assert.NoError(t, err)
	assert.Equal(t, 27500.0, instrument.Price)
}

func TestService_DeleteInstrument_Sold(t *testing.T) {
	service, mockRepo := newInventoryService(t)

	mockRepo.EXPECT().
		GetInstrumentByID("vl-001").
		Return(&domain.Instrument{ID: "vl-001", Status: domain.InstrumentStatusSold}, nil)

	err := service.DeleteInstrument("vl-001")

	assert.ErrorIs(t, err, ErrInstrumentAlreadySold)
}

func TestService_DeleteInstrument_NotFound(t *testing.T) {
	service, mockRepo := newInventoryService(t)

	mockRepo.EXPECT().GetInstrumentByID("xx-999").Return(nil, nil)

	err := service.DeleteInstrument("xx-999")

	assert.ErrorIs(t, err, ErrInstrumentNotFound)
}
