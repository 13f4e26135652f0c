package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cienciascontic/textlabx/internal/adapter/extension"
	"github.com/cienciascontic/textlabx/internal/domain/service"
	"github.com/cienciascontic/textlabx/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses
func MapUsecaseError(err error) ErrorResponse {
	var statusErr *service.StatusError

	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       "NOT_FOUND",
			Message:    "session not found",
		}
	case errors.Is(err, extension.ErrUnknownOpcode):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       "NOT_FOUND",
			Message:    "unknown block",
		}
	case errors.Is(err, usecase.ErrInvalidRequest):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    err.Error(),
		}
	case errors.As(err, &statusErr):
		return ErrorResponse{
			StatusCode: http.StatusBadGateway,
			Code:       "UPSTREAM_ERROR",
			Message:    fmt.Sprintf("classification service returned status %d", statusErr.StatusCode),
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError sends the HTTP response mapped from a usecase error
func HandleUsecaseError(c *gin.Context, err error) {
	_ = c.Error(err)
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleInvalidUUID handles an invalid UUID parameter error.
func HandleInvalidUUID(c *gin.Context, paramName string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid "+paramName)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}
