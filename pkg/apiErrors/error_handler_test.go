package apiErrors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		code      string
		retryable bool
	}{
		{ErrNetwork, true},
		{ErrDatabase, true},
		{ErrExternalService, true},
		{ErrInternalServer, true},
		{ErrValidation, false},
		{ErrUnauthorized, false},
		{ErrForbidden, false},
		{ErrNotFound, false},
		{ErrConflict, false},
		{"CODIGO_DESCONHECIDO", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
		retryable      bool
	}{
		{name: "Erro de validação", code: ErrValidation, expectedStatus: http.StatusBadRequest, retryable: false},
		{name: "Erro de banco", code: ErrDatabase, expectedStatus: http.StatusInternalServerError, retryable: true},
		{name: "Erro de rede", code: ErrNetwork, expectedStatus: http.StatusServiceUnavailable, retryable: true},
		{name: "Não autorizado", code: ErrUnauthorized, expectedStatus: http.StatusUnauthorized, retryable: false},
		{name: "Código desconhecido cai em 500", code: "QUALQUER_COISA", expectedStatus: http.StatusInternalServerError, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			WriteError(recorder, tt.code, "mensagem de teste", nil)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var apiErr APIError
			assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, "mensagem de teste", apiErr.Message)
			assert.Equal(t, tt.retryable, apiErr.Retryable)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(assert.AnError, ErrNetwork)
	assert.Equal(t, ErrNetwork, apiErr.Code)
	assert.Equal(t, assert.AnError.Error(), apiErr.Message)
	assert.True(t, apiErr.Retryable)

	apiErr = FromError(nil, ErrNetwork)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
