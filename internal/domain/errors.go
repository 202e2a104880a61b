package domain

import (
	"errors"
	"fmt"
)

// Field identifies the user-supplied input a ValidationError refers to.
type Field string

const (
	FieldPlan         Field = "plan"
	FieldInstallments Field = "installments"
	FieldPhone        Field = "phone"
	FieldEmail        Field = "email"
	FieldPostalCode   Field = "postal_code"
	FieldNationalID   Field = "national_id"
	FieldCardBrand    Field = "card_brand"
	FieldExpiration   Field = "expiration"
	FieldCardNumber   Field = "card_number"
	FieldCVV          Field = "cvv"
	FieldAmount       Field = "amount"
	FieldPaymentID    Field = "payment_id"
)

// ValidationError is a user-input failure. The checkout pipeline stops at the first one.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field Field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError reports whether err wraps a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}

// IsFieldError checks if an error is a ValidationError for a specific field
func IsFieldError(err error, field Field) bool {
	vErr, ok := IsValidationError(err)
	return ok && vErr.Field == field
}

var ErrInvalidTransition = errors.New("invalid checkout state transition")
