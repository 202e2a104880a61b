package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/centroeduc-checkout/internal/interfaces/rest"
	restmiddleware "github.com/DanielPopoola/centroeduc-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/centroeduc-checkout/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route behind the shared middleware stack.
func NewRouter(h *Handlers, logger *slog.Logger, serviceName string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.NewTracingMiddleware(serviceName))
	r.Use(observability.NewLoggerMiddleware(logger))
	r.Use(observability.NewMetricsMiddleware(serviceName))
	r.Use(restmiddleware.Recovery(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/plans", h.ListPlans)
	r.Get("/checkout/donation", h.DonationForm)
	r.Get("/checkout/{planID}", h.CheckoutForm)

	r.Post("/payments", h.PayPlan)
	r.Post("/donations", h.Donate)
	r.Post("/payments/{paymentID}/capture", h.CapturePayment)
	r.Post("/payments/{paymentID}/void", h.VoidPayment)

	return r
}
