package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro normalizados expostos para o front-end.
// O front usa o código para escolher a mensagem do toast e o campo
// retryable para exibir (ou não) o botão de tentar novamente.
const (
	// Erros de autenticação e autorização
	ErrUnauthorized = "UNAUTHORIZED" // Credenciais ou token inválidos
	ErrForbidden    = "FORBIDDEN"    // Sem permissão para o recurso

	// Erros de validação
	ErrValidation = "VALIDATION_ERROR" // Dados da requisição inválidos ou ausentes

	// Erros de dados
	ErrNotFound = "NOT_FOUND" // Registro não encontrado
	ErrConflict = "CONFLICT"  // Violação de unicidade (ex: número de série duplicado)

	// Erros de infraestrutura
	ErrDatabase        = "DATABASE_ERROR"   // Erro de operação no banco de dados
	ErrNetwork         = "NETWORK_ERROR"    // Falha de comunicação com serviço remoto
	ErrExternalService = "EXTERNAL_SERVICE" // Serviço externo respondeu com erro
	ErrInternalServer  = "INTERNAL_ERROR"   // Erro interno não mapeado
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrUnauthorized:    http.StatusUnauthorized,
	ErrForbidden:       http.StatusForbidden,
	ErrValidation:      http.StatusBadRequest,
	ErrNotFound:        http.StatusNotFound,
	ErrConflict:        http.StatusConflict,
	ErrDatabase:        http.StatusInternalServerError,
	ErrNetwork:         http.StatusServiceUnavailable,
	ErrExternalService: http.StatusBadGateway,
	ErrInternalServer:  http.StatusInternalServerError,
}

// Lista estática de códigos que o cliente pode tentar novamente.
// Sem backoff nem circuit-breaking: a decisão é apenas do usuário.
var retryableCodes = map[string]struct{}{
	ErrNetwork:         {},
	ErrDatabase:        {},
	ErrExternalService: {},
	ErrInternalServer:  {},
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code      string `json:"code"`              // Código de erro para o cliente
	Message   string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Retryable bool   `json:"retryable"`         // Se o cliente pode tentar novamente
	Details   any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// IsRetryable informa se o código está na lista de erros repetíveis
func IsRetryable(code string) bool {
	_, ok := retryableCodes[code]
	return ok
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryable(code),
		Details:   details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:      ErrInternalServer,
			Message:   "Erro desconhecido",
			Retryable: IsRetryable(ErrInternalServer),
		}
	}

	return APIError{
		Code:      code,
		Message:   err.Error(),
		Retryable: IsRetryable(code),
	}
}
