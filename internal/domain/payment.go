// Package domain holds the checkout rules: plan pricing, field validation,
// status translation and the per-submission checkout state machine.
package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutState is the position of a single submission in the checkout flow
type CheckoutState string

const (
	StatePendingValidation CheckoutState = "PENDING_VALIDATION"
	StateValidated         CheckoutState = "VALIDATED"
	StateChargeCreated     CheckoutState = "CHARGE_CREATED"
	StateCaptured          CheckoutState = "CAPTURED"
	StateAuthorizedOnly    CheckoutState = "AUTHORIZED_ONLY"
	StateRejected          CheckoutState = "REJECTED"
	StateGatewayError      CheckoutState = "GATEWAY_ERROR"
)

// Flow distinguishes plan purchases from donations.
type Flow string

const (
	FlowPlan     Flow = "plan"
	FlowDonation Flow = "donation"
)

// Checkout records one submission. It lives for a single request and is never persisted.
type Checkout struct {
	Flow  Flow
	State CheckoutState

	Label          string
	Installments   int
	PerInstallment decimal.Decimal
	Total          decimal.Decimal
	AmountCents    int64

	OrderID    string
	Brand      CardBrand
	MaskedCard string

	Result     *GatewayResult
	StatusCode *int
	Receipt    *Receipt

	Failure   error
	CreatedAt time.Time
}

func NewCheckout(flow Flow, createdAt time.Time) *Checkout {
	return &Checkout{
		Flow:      flow,
		State:     StatePendingValidation,
		CreatedAt: createdAt,
	}
}

// Validate records the priced order once every validator passed.
func (c *Checkout) Validate(label string, installments int, perInstallment, total decimal.Decimal, amountCents int64) error {
	if err := c.transition(StateValidated); err != nil {
		return err
	}
	c.Label = label
	c.Installments = installments
	c.PerInstallment = perInstallment
	c.Total = total
	c.AmountCents = amountCents
	return nil
}

// ChargeCreated records the gateway's answer to the sale.
func (c *Checkout) ChargeCreated(charge ChargeRequest, result *GatewayResult) error {
	if err := c.transition(StateChargeCreated); err != nil {
		return err
	}
	c.OrderID = charge.OrderID
	c.Brand = charge.Card.Brand
	c.MaskedCard = MaskCardNumber(charge.Card.Number)
	c.Result = result
	c.StatusCode = result.Status
	return nil
}

// Capture marks the sale as settled regardless of what the initial answer said.
func (c *Checkout) Capture() error {
	if err := c.transition(StateCaptured); err != nil {
		return err
	}
	captured := StatusCaptured
	c.StatusCode = &captured
	return nil
}

// Settle picks the final state from the reported status.
func (c *Checkout) Settle() error {
	if c.StatusCode != nil && *c.StatusCode == StatusCaptured {
		return c.transition(StateCaptured)
	}
	return c.transition(StateAuthorizedOnly)
}

func (c *Checkout) Reject(err error) error {
	if tErr := c.transition(StateRejected); tErr != nil {
		return tErr
	}
	c.Failure = err
	return nil
}

func (c *Checkout) FailGateway(err error) error {
	if tErr := c.transition(StateGatewayError); tErr != nil {
		return tErr
	}
	c.Failure = err
	return nil
}

// StatusText is the human-readable gateway status.
func (c *Checkout) StatusText() string {
	return StatusText(c.StatusCode)
}

// Summary is the one-line outcome shown to the customer.
func (c *Checkout) Summary() string {
	captured := c.State == StateCaptured
	switch {
	case c.Flow == FlowDonation && captured:
		return "Donation captured successfully."
	case c.Flow == FlowDonation:
		return "Donation authorized/pending."
	case captured:
		return "Payment captured."
	default:
		return "Payment authorized/pending."
	}
}

// IsTerminal reports whether the flow is over.
func (c *Checkout) IsTerminal() bool {
	switch c.State {
	case StateCaptured, StateAuthorizedOnly, StateRejected, StateGatewayError:
		return true
	default:
		return false
	}
}

func (c *Checkout) transition(target CheckoutState) error {
	if err := c.canTransitionTo(target); err != nil {
		return err
	}
	c.State = target
	return nil
}

func (c *Checkout) canTransitionTo(target CheckoutState) error {
	switch c.State {
	case StatePendingValidation:
		return allow(target, StateValidated, StateRejected)
	case StateValidated:
		return allow(target, StateChargeCreated, StateGatewayError)
	case StateChargeCreated:
		return allow(target, StateCaptured, StateAuthorizedOnly, StateGatewayError)
	}
	return ErrInvalidTransition
}

func allow(target CheckoutState, allowed ...CheckoutState) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return ErrInvalidTransition
}
