package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"idsegen/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrBatchMalformado):
		return http.StatusBadRequest, "BATCH_MALFORMADO", "el batch no tiene la estructura requerida: campo 'empresa' con lista de empresas"
	case errors.Is(err, domain.ErrDemasiadasEmpresas):
		return http.StatusBadRequest, "DEMASIADAS_EMPRESAS", "el batch excede el límite de empresas permitidas"
	case errors.Is(err, domain.ErrEscrituraArchivo):
		return http.StatusInternalServerError, "ESCRITURA_FALLIDA", "no fue posible escribir un archivo de salida"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}
