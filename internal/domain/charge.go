package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Card holds already validated card data.
type Card struct {
	Number     string
	CVV        string
	Brand      CardBrand
	Expiration Expiration
	Holder     string
}

// ChargeOptions are the deployment-level flags sent with every sale.
type ChargeOptions struct {
	Capture        bool
	Authenticate   bool
	SoftDescriptor string
}

// ChargeRequest is what gets submitted to the gateway. It is built once per
// submission, after every validator passed, and is passed by value.
type ChargeRequest struct {
	OrderID        string
	CustomerName   string
	Card           Card
	AmountCents    int64
	Installments   int
	Capture        bool
	Authenticate   bool
	SoftDescriptor string
}

func NewChargeRequest(
	orderID string,
	customerName string,
	card Card,
	amountCents int64,
	installments int,
	opts ChargeOptions,
) (ChargeRequest, error) {
	if orderID == "" {
		return ChargeRequest{}, errors.New("order ID is required")
	}
	if amountCents < 0 {
		return ChargeRequest{}, fmt.Errorf("invalid amount %d", amountCents)
	}
	if installments < 1 || installments > MaxInstallments {
		return ChargeRequest{}, newValidationError(FieldInstallments, "invalid number of installments")
	}

	return ChargeRequest{
		OrderID:        orderID,
		CustomerName:   customerName,
		Card:           card,
		AmountCents:    amountCents,
		Installments:   installments,
		Capture:        opts.Capture,
		Authenticate:   opts.Authenticate,
		SoftDescriptor: opts.SoftDescriptor,
	}, nil
}

// GatewayResult is what the gateway reported for a created sale.
type GatewayResult struct {
	// Status is nil when the gateway omitted it.
	Status            *int
	ReturnCode        string
	ReturnMessage     string
	PaymentID         string
	AuthenticationURL string
}

// GatewayAck is the gateway's answer to a capture or void.
type GatewayAck struct {
	Status        *int
	ReturnCode    string
	ReturnMessage string
}

// ValidateSettlement checks the input of a standalone capture or void.
func ValidateSettlement(paymentID string, amountCents int64) error {
	if strings.TrimSpace(paymentID) == "" {
		return newValidationError(FieldPaymentID, "payment ID is required")
	}
	if amountCents <= 0 {
		return newValidationError(FieldAmount, "amount must be greater than zero")
	}
	return nil
}
