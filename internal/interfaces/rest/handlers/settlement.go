package handlers

import (
	"net/http"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application/services"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/DanielPopoola/centroeduc-checkout/internal/interfaces/rest"
	"github.com/DanielPopoola/centroeduc-checkout/internal/observability"
	"github.com/go-chi/chi/v5"
)

type SettlementRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required,gt=0"`
}

// CapturePayment handles POST /payments/{paymentID}/capture
func (h *Handlers) CapturePayment(w http.ResponseWriter, r *http.Request) {
	logger := observability.LoggerFromContext(r.Context())
	paymentID := chi.URLParam(r, "paymentID")

	var req SettlementRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, logger)
		return
	}

	ack, err := h.captureService.Capture(r.Context(), services.CaptureCommand{
		PaymentID: paymentID,
		Amount:    req.AmountCents,
	})
	if err != nil {
		rest.WriteError(w, err, logger)
		return
	}

	rest.WriteSuccess(w, "Payment captured successfully.",
		toSettlementView(paymentID, req.AmountCents, ack, h.now().Format(domain.ReceiptTimeLayout)))
}

// VoidPayment handles POST /payments/{paymentID}/void
func (h *Handlers) VoidPayment(w http.ResponseWriter, r *http.Request) {
	logger := observability.LoggerFromContext(r.Context())
	paymentID := chi.URLParam(r, "paymentID")

	var req SettlementRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, logger)
		return
	}

	ack, err := h.voidService.Void(r.Context(), services.VoidCommand{
		PaymentID: paymentID,
		Amount:    req.AmountCents,
	})
	if err != nil {
		rest.WriteError(w, err, logger)
		return
	}

	rest.WriteSuccess(w, "Payment voided.",
		toSettlementView(paymentID, req.AmountCents, ack, h.now().Format(domain.ReceiptTimeLayout)))
}
