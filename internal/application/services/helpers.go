package services

import (
	"context"
	"errors"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/DanielPopoola/centroeduc-checkout/internal/observability"
	"github.com/google/uuid"
)

// newOrderID is the short merchant order id sent to the gateway.
func newOrderID() string {
	return uuid.New().String()[:8]
}

// runChecks runs each check in order and stops at the first failure.
func runChecks(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// validateCard checks brand, expiration, number and CVV in that order.
func validateCard(holder, brand, number, expiration, cvv string, now time.Time) (domain.Card, error) {
	card := domain.Card{
		Number: number,
		CVV:    cvv,
		Holder: holder,
	}

	err := runChecks(
		func() (err error) {
			card.Brand, err = domain.ParseCardBrand(brand)
			return err
		},
		func() (err error) {
			card.Expiration, err = domain.ParseExpiration(expiration, now)
			return err
		},
		func() error { return domain.ValidateCardNumber(number) },
		func() error { return domain.ValidateCVV(cvv) },
	)
	if err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

func customerName(holder, fallback string) string {
	if holder == "" {
		return fallback
	}
	return holder
}

func observeGateway(operation string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = "canceled"
	case err != nil:
		outcome = "error"
	}
	observability.RecordGatewayCall(operation, outcome, time.Since(start))
}
