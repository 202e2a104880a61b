package application

import (
	"context"

	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
)

// Gateway is the port for the external card acquirer. Every call is attempted
// exactly once; callers get the raw error back.
type Gateway interface {
	CreateSale(ctx context.Context, req domain.ChargeRequest) (*domain.GatewayResult, error)
	CaptureSale(ctx context.Context, paymentID string, amountCents, serviceFeeCents int64) (*domain.GatewayAck, error)
	VoidSale(ctx context.Context, paymentID string, amountCents int64) (*domain.GatewayAck, error)
}
