package handlers

import (
	"net/http"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/DanielPopoola/centroeduc-checkout/internal/interfaces/rest"
	"github.com/go-chi/chi/v5"
)

// ListPlans handles GET /plans
func (h *Handlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans := h.quoteService.Plans()
	views := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, toPlanView(p))
	}

	rest.WriteSuccess(w, "", CatalogView{
		Plans:               views,
		Brands:              domain.SupportedBrands(),
		MonthlyInterestRate: h.quoteService.MonthlyRate().String(),
		MaxInstallments:     domain.MaxInstallments,
	})
}

// CheckoutForm handles GET /checkout/{planID}. Unknown plans are a 404.
func (h *Handlers) CheckoutForm(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quoteService.Quote(chi.URLParam(r, "planID"))
	if err != nil {
		if domain.IsFieldError(err, domain.FieldPlan) {
			rest.WriteJSON(w, http.StatusNotFound, rest.Result{
				Success: false,
				Message: application.ToMessage(err),
			})
			return
		}
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteSuccess(w, "", CheckoutFormView{
		Plan:                toPlanView(quote.Plan),
		Brands:              domain.SupportedBrands(),
		MonthlyInterestRate: h.quoteService.MonthlyRate().String(),
		MaxInstallments:     domain.MaxInstallments,
		Installments:        toQuoteViews(quote.Quotes),
	})
}

// DonationForm handles GET /checkout/donation
func (h *Handlers) DonationForm(w http.ResponseWriter, r *http.Request) {
	rest.WriteSuccess(w, "", DonationFormView{
		Brands:      domain.SupportedBrands(),
		Amount:      domain.DonationAmount.StringFixed(2),
		AmountCents: domain.ToMinorUnits(domain.DonationAmount),
	})
}
