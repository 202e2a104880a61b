package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
)

// ErrorCategory labels a failure for logs and metrics. It never changes how
// the failure is handled.
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "validation"
	CategoryGateway    ErrorCategory = "gateway"
	CategoryCanceled   ErrorCategory = "canceled"
	CategoryInternal   ErrorCategory = "internal"
)

// CategorizeError determines the category of a checkout failure
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if _, ok := domain.IsValidationError(err); ok {
		return CategoryValidation
	}

	if errors.Is(err, context.Canceled) {
		return CategoryCanceled
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeValidation:
			return CategoryValidation
		case ErrCodeGateway:
			return CategoryGateway
		}
	}

	return CategoryInternal
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if _, ok := domain.IsValidationError(err); ok {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// ToMessage is the text shown to the user for a failure. Gateway failures
// carry the underlying error text; internal ones never do.
func ToMessage(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		if svcErr.Code == ErrCodeGateway {
			return svcErr.Error()
		}
		return svcErr.Message
	}
	return err.Error()
}
