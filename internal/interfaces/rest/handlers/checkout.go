package handlers

import (
	"net/http"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application/services"
	"github.com/DanielPopoola/centroeduc-checkout/internal/interfaces/rest"
	"github.com/DanielPopoola/centroeduc-checkout/internal/observability"
)

// PlanPaymentRequest is the checkout form. Formats are checked by the
// checkout pipeline so the customer sees one message at a time.
type PlanPaymentRequest struct {
	PlanID string `json:"plan_id" validate:"max=32"`
	// Installments defaults to 1 when omitted.
	Installments *int `json:"installments"`

	Phone      string `json:"phone" validate:"max=32"`
	Email      string `json:"email" validate:"max=254"`
	PostalCode string `json:"postal_code" validate:"max=16"`
	CPF        string `json:"cpf" validate:"max=32"`

	Holder     string `json:"holder" validate:"max=128"`
	Brand      string `json:"brand" validate:"max=32"`
	CardNumber string `json:"card_number" validate:"max=32"`
	Expiration string `json:"expiration" validate:"max=16"`
	CVV        string `json:"cvv" validate:"max=8"`
}

type DonationRequest struct {
	Holder     string `json:"holder" validate:"max=128"`
	Brand      string `json:"brand" validate:"max=32"`
	CardNumber string `json:"card_number" validate:"max=32"`
	Expiration string `json:"expiration" validate:"max=16"`
	CVV        string `json:"cvv" validate:"max=8"`
}

// PayPlan handles POST /payments
func (h *Handlers) PayPlan(w http.ResponseWriter, r *http.Request) {
	logger := observability.LoggerFromContext(r.Context())

	var req PlanPaymentRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, logger)
		return
	}

	installments := 1
	if req.Installments != nil {
		installments = *req.Installments
	}

	checkout, err := h.checkoutService.PayPlan(r.Context(), services.PlanPaymentCommand{
		PlanID:       req.PlanID,
		Installments: installments,
		Phone:        req.Phone,
		Email:        req.Email,
		PostalCode:   req.PostalCode,
		CPF:          req.CPF,
		Holder:       req.Holder,
		Brand:        req.Brand,
		CardNumber:   req.CardNumber,
		Expiration:   req.Expiration,
		CVV:          req.CVV,
	})
	if err != nil {
		rest.WriteError(w, err, logger)
		return
	}

	rest.WriteSuccess(w, checkout.Summary(), toCheckoutView(checkout))
}

// Donate handles POST /donations
func (h *Handlers) Donate(w http.ResponseWriter, r *http.Request) {
	logger := observability.LoggerFromContext(r.Context())

	var req DonationRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, logger)
		return
	}

	checkout, err := h.checkoutService.Donate(r.Context(), services.DonationCommand{
		Holder:     req.Holder,
		Brand:      req.Brand,
		CardNumber: req.CardNumber,
		Expiration: req.Expiration,
		CVV:        req.CVV,
	})
	if err != nil {
		rest.WriteError(w, err, logger)
		return
	}

	rest.WriteSuccess(w, checkout.Summary(), toCheckoutView(checkout))
}
