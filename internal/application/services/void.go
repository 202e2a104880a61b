package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
)

// VoidService cancels a payment.
type VoidService struct {
	gateway application.Gateway
	logger  *slog.Logger
}

func NewVoidService(gateway application.Gateway, logger *slog.Logger) *VoidService {
	return &VoidService{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *VoidService) Void(ctx context.Context, cmd VoidCommand) (*domain.GatewayAck, error) {
	if err := domain.ValidateSettlement(cmd.PaymentID, cmd.Amount); err != nil {
		return nil, application.NewValidationError(err)
	}

	start := time.Now()
	ack, err := s.gateway.VoidSale(ctx, cmd.PaymentID, cmd.Amount)
	observeGateway("void_sale", start, err)
	if err != nil {
		s.logger.Error("void failed", "payment_id", cmd.PaymentID, "error", err)
		return nil, application.NewGatewayError("void", err)
	}

	s.logger.Info("payment voided", "payment_id", cmd.PaymentID, "amount_cents", cmd.Amount)
	return ack, nil
}
