package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/DanielPopoola/centroeduc-checkout/internal/observability"
	"github.com/shopspring/decimal"
)

const (
	defaultCustomerName = "Cliente"
	defaultDonorName    = "Doador"
	donationOrderPrefix = "don-"
)

var errEmptyGatewayResponse = errors.New("gateway returned an empty response")

// CheckoutOptions are the deployment settings a checkout runs with.
type CheckoutOptions struct {
	MonthlyRate                decimal.Decimal
	CaptureImmediately         bool
	CaptureImmediatelyDonation bool
	Authenticate               bool
	SoftDescriptor             string

	// Now and NewOrderID default to the wall clock and a short random id.
	Now        func() time.Time
	NewOrderID func() string
}

type CheckoutService struct {
	gateway application.Gateway
	catalog *domain.Catalog
	opts    CheckoutOptions
	logger  *slog.Logger
}

func NewCheckoutService(
	gateway application.Gateway,
	catalog *domain.Catalog,
	opts CheckoutOptions,
	logger *slog.Logger,
) *CheckoutService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewOrderID == nil {
		opts.NewOrderID = newOrderID
	}
	return &CheckoutService{
		gateway: gateway,
		catalog: catalog,
		opts:    opts,
		logger:  logger,
	}
}

// PayPlan validates a plan submission, prices it and charges the card.
// The returned checkout is non-nil whenever the submission got past parsing,
// including rejected and failed ones.
func (s *CheckoutService) PayPlan(ctx context.Context, cmd PlanPaymentCommand) (*domain.Checkout, error) {
	now := s.opts.Now()
	checkout := domain.NewCheckout(domain.FlowPlan, now)

	var (
		plan  domain.Plan
		quote domain.Quote
		card  domain.Card
	)
	err := runChecks(
		func() (err error) {
			plan, err = s.catalog.Plan(cmd.PlanID)
			return err
		},
		func() (err error) {
			quote, err = domain.QuotePlan(plan, s.opts.MonthlyRate, cmd.Installments)
			return err
		},
		func() (err error) {
			_, err = domain.NormalizePhone(cmd.Phone)
			return err
		},
		func() error { return domain.ValidateEmail(cmd.Email) },
		func() (err error) {
			_, err = domain.NormalizePostalCode(cmd.PostalCode)
			return err
		},
		func() (err error) {
			_, err = domain.NormalizeCPF(cmd.CPF)
			return err
		},
		func() (err error) {
			card, err = validateCard(cmd.Holder, cmd.Brand, cmd.CardNumber, cmd.Expiration, cmd.CVV, now)
			return err
		},
	)
	if err != nil {
		return s.reject(checkout, err)
	}

	charge, err := domain.NewChargeRequest(
		s.opts.NewOrderID(),
		customerName(cmd.Holder, defaultCustomerName),
		card,
		quote.AmountCents,
		quote.Installments,
		domain.ChargeOptions{
			Capture:        s.opts.CaptureImmediately,
			Authenticate:   s.opts.Authenticate,
			SoftDescriptor: s.opts.SoftDescriptor,
		},
	)
	if err != nil {
		return s.reject(checkout, err)
	}

	if err := checkout.Validate(plan.Label, quote.Installments, quote.PerInstallment, quote.Total, quote.AmountCents); err != nil {
		return checkout, application.NewInternalError(err)
	}

	return s.charge(ctx, checkout, charge, s.opts.CaptureImmediately, "process payment")
}

// Donate charges the fixed donation amount in a single installment.
func (s *CheckoutService) Donate(ctx context.Context, cmd DonationCommand) (*domain.Checkout, error) {
	now := s.opts.Now()
	checkout := domain.NewCheckout(domain.FlowDonation, now)

	card, err := validateCard(cmd.Holder, cmd.Brand, cmd.CardNumber, cmd.Expiration, cmd.CVV, now)
	if err != nil {
		return s.reject(checkout, err)
	}

	amountCents := domain.ToMinorUnits(domain.DonationAmount)
	charge, err := domain.NewChargeRequest(
		donationOrderPrefix+s.opts.NewOrderID(),
		customerName(cmd.Holder, defaultDonorName),
		card,
		amountCents,
		1,
		domain.ChargeOptions{
			Capture:        s.opts.CaptureImmediatelyDonation,
			Authenticate:   s.opts.Authenticate,
			SoftDescriptor: s.opts.SoftDescriptor,
		},
	)
	if err != nil {
		return s.reject(checkout, err)
	}

	if err := checkout.Validate(domain.DonationLabel, 1, domain.DonationAmount, domain.DonationAmount, amountCents); err != nil {
		return checkout, application.NewInternalError(err)
	}

	return s.charge(ctx, checkout, charge, s.opts.CaptureImmediatelyDonation, "process donation")
}

func (s *CheckoutService) charge(
	ctx context.Context,
	checkout *domain.Checkout,
	charge domain.ChargeRequest,
	capture bool,
	operation string,
) (*domain.Checkout, error) {
	logger := s.logger.With(
		"flow", checkout.Flow,
		"order_id", charge.OrderID,
		"amount_cents", charge.AmountCents,
		"installments", charge.Installments,
	)

	start := time.Now()
	result, err := s.gateway.CreateSale(ctx, charge)
	if err == nil && result == nil {
		err = errEmptyGatewayResponse
	}
	observeGateway("create_sale", start, err)
	if err != nil {
		return s.failGateway(logger, checkout, operation, err)
	}

	if err := checkout.ChargeCreated(charge, result); err != nil {
		return checkout, application.NewInternalError(err)
	}
	logger = logger.With("payment_id", result.PaymentID, "card", checkout.MaskedCard)

	if capture {
		start = time.Now()
		_, err = s.gateway.CaptureSale(ctx, result.PaymentID, charge.AmountCents, 0)
		observeGateway("capture_sale", start, err)
		if err != nil {
			return s.failGateway(logger, checkout, operation, err)
		}
		err = checkout.Capture()
	} else {
		err = checkout.Settle()
	}
	if err != nil {
		return checkout, application.NewInternalError(err)
	}

	checkout.Receipt = domain.NewReceipt(checkout, charge.Card.Number, s.opts.Now())
	observability.RecordCheckout(string(checkout.Flow), string(checkout.State))

	logger.Info("checkout completed",
		"state", checkout.State,
		"status", checkout.StatusText(),
		"return_code", result.ReturnCode,
	)
	return checkout, nil
}

func (s *CheckoutService) reject(checkout *domain.Checkout, err error) (*domain.Checkout, error) {
	if tErr := checkout.Reject(err); tErr != nil {
		return checkout, application.NewInternalError(tErr)
	}
	observability.RecordCheckout(string(checkout.Flow), string(checkout.State))

	field := ""
	if vErr, ok := domain.IsValidationError(err); ok {
		field = string(vErr.Field)
	}
	s.logger.Info("checkout rejected", "flow", checkout.Flow, "field", field, "reason", err.Error())
	return checkout, application.NewValidationError(err)
}

func (s *CheckoutService) failGateway(
	logger *slog.Logger,
	checkout *domain.Checkout,
	operation string,
	err error,
) (*domain.Checkout, error) {
	if tErr := checkout.FailGateway(err); tErr != nil {
		return checkout, application.NewInternalError(tErr)
	}
	observability.RecordCheckout(string(checkout.Flow), string(checkout.State))

	logger.Error("gateway call failed",
		"operation", operation,
		"category", application.CategorizeError(err),
		"error", err,
	)
	return checkout, application.NewGatewayError(operation, err)
}
