package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edcviet/invoicegen/internal/invoice/domain"
	obscontext "github.com/edcviet/invoicegen/internal/observability/context"
)

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *apiError) Error() string { return e.Message }

var ErrNotFound = &apiError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}

func invalidRequestError() error {
	return &apiError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "invalid request body"}
}

func newValidationError(field, code, message string) error {
	return &apiError{Status: http.StatusBadRequest, Code: code, Message: message, Field: field}
}

// AbortWithError writes the error envelope and stops the handler chain.
// Domain sentinels map onto HTTP statuses here so handlers stay thin.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		apiErr = fromDomainError(err)
	}
	_ = c.Error(err)
	body := gin.H{"error": apiErr}
	if requestID := obscontext.RequestIDFromGin(c); requestID != "" {
		body["request_id"] = requestID
	}
	c.AbortWithStatusJSON(apiErr.Status, body)
}

func fromDomainError(err error) *apiError {
	switch {
	case errors.Is(err, domain.ErrDraftNotFound):
		return &apiError{Status: http.StatusNotFound, Code: err.Error(), Message: "draft not found"}
	case errors.Is(err, domain.ErrInvalidDraftID),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidField),
		errors.Is(err, domain.ErrItemIndex):
		return &apiError{Status: http.StatusBadRequest, Code: err.Error(), Message: err.Error()}
	case errors.Is(err, domain.ErrLastItem):
		return &apiError{Status: http.StatusConflict, Code: err.Error(), Message: "an invoice keeps at least one line item"}
	case errors.Is(err, domain.ErrExportFailed):
		return &apiError{Status: http.StatusBadGateway, Code: err.Error(), Message: "pdf export failed"}
	default:
		return &apiError{Status: http.StatusInternalServerError, Code: "internal_error", Message: "internal error"}
	}
}
