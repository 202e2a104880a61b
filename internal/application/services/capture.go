package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
)

// CaptureService settles a payment that was only authorized.
type CaptureService struct {
	gateway application.Gateway
	logger  *slog.Logger
}

func NewCaptureService(gateway application.Gateway, logger *slog.Logger) *CaptureService {
	return &CaptureService{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *CaptureService) Capture(ctx context.Context, cmd CaptureCommand) (*domain.GatewayAck, error) {
	if err := domain.ValidateSettlement(cmd.PaymentID, cmd.Amount); err != nil {
		return nil, application.NewValidationError(err)
	}

	start := time.Now()
	ack, err := s.gateway.CaptureSale(ctx, cmd.PaymentID, cmd.Amount, 0)
	observeGateway("capture_sale", start, err)
	if err != nil {
		s.logger.Error("capture failed", "payment_id", cmd.PaymentID, "error", err)
		return nil, application.NewGatewayError("capture", err)
	}

	s.logger.Info("payment captured", "payment_id", cmd.PaymentID, "amount_cents", cmd.Amount)
	return ack, nil
}
