package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
	"github.com/DanielPopoola/centroeduc-checkout/internal/application/services"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	PayPlan(ctx context.Context, cmd services.PlanPaymentCommand) (*domain.Checkout, error)
	Donate(ctx context.Context, cmd services.DonationCommand) (*domain.Checkout, error)
}

type CaptureService interface {
	Capture(ctx context.Context, cmd services.CaptureCommand) (*domain.GatewayAck, error)
}

type VoidService interface {
	Void(ctx context.Context, cmd services.VoidCommand) (*domain.GatewayAck, error)
}

type QuoteService interface {
	Plans() []domain.Plan
	MonthlyRate() decimal.Decimal
	Quote(planID string) (*services.PlanQuote, error)
}

type Handlers struct {
	checkoutService CheckoutService
	captureService  CaptureService
	voidService     VoidService
	quoteService    QuoteService
	validate        *validator.Validate
	logger          *slog.Logger
	now             func() time.Time
}

func NewHandlers(
	checkoutService CheckoutService,
	captureService CaptureService,
	voidService VoidService,
	quoteService QuoteService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		checkoutService: checkoutService,
		captureService:  captureService,
		voidService:     voidService,
		quoteService:    quoteService,
		validate:        validator.New(),
		logger:          logger,
		now:             time.Now,
	}
}

// decode reads a JSON body into dst and runs its validate tags.
func (h *Handlers) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return application.NewValidationError(fmt.Errorf("invalid request body: %w", err))
	}
	if err := h.validate.Struct(dst); err != nil {
		return application.NewValidationError(err)
	}
	return nil
}
