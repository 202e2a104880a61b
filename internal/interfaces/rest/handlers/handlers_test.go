package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
	"github.com/DanielPopoola/centroeduc-checkout/internal/application/services"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/DanielPopoola/centroeduc-checkout/internal/interfaces/rest/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock services
type mockCheckoutService struct {
	payPlanFn func(ctx context.Context, cmd services.PlanPaymentCommand) (*domain.Checkout, error)
	donateFn  func(ctx context.Context, cmd services.DonationCommand) (*domain.Checkout, error)
}

func (m *mockCheckoutService) PayPlan(ctx context.Context, cmd services.PlanPaymentCommand) (*domain.Checkout, error) {
	return m.payPlanFn(ctx, cmd)
}

func (m *mockCheckoutService) Donate(ctx context.Context, cmd services.DonationCommand) (*domain.Checkout, error) {
	return m.donateFn(ctx, cmd)
}

type mockCaptureService struct {
	captureFn func(ctx context.Context, cmd services.CaptureCommand) (*domain.GatewayAck, error)
}

func (m *mockCaptureService) Capture(ctx context.Context, cmd services.CaptureCommand) (*domain.GatewayAck, error) {
	return m.captureFn(ctx, cmd)
}

type mockVoidService struct {
	voidFn func(ctx context.Context, cmd services.VoidCommand) (*domain.GatewayAck, error)
}

func (m *mockVoidService) Void(ctx context.Context, cmd services.VoidCommand) (*domain.GatewayAck, error) {
	return m.voidFn(ctx, cmd)
}

type result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func intPtr(i int) *int { return &i }

func newRouter(t *testing.T, checkout *mockCheckoutService, capture *mockCaptureService, void *mockVoidService) http.Handler {
	t.Helper()
	catalog, err := domain.NewCatalog(domain.DefaultPlans())
	require.NoError(t, err)

	quotes := services.NewQuoteService(catalog, decimal.RequireFromString("0.015"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.NewHandlers(checkout, capture, void, quotes, logger)
	return handlers.NewRouter(h, logger, "checkout-test")
}

func do(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, result) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var res result
	if rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	}
	return rr, res
}

func authorizedCheckout(t *testing.T) *domain.Checkout {
	t.Helper()
	at := time.Date(2026, time.October, 17, 14, 30, 0, 0, time.UTC)

	c := domain.NewCheckout(domain.FlowPlan, at)
	require.NoError(t, c.Validate("Conclusão em 3 meses", 3,
		decimal.RequireFromString("432.66"), decimal.RequireFromString("1297.98"), 129798))

	charge, err := domain.NewChargeRequest("ab12cd34", "Ana",
		domain.Card{Number: "4111111111111111", CVV: "123", Brand: domain.BrandVisa},
		129798, 3, domain.ChargeOptions{})
	require.NoError(t, err)

	require.NoError(t, c.ChargeCreated(charge, &domain.GatewayResult{
		Status:     intPtr(1),
		ReturnCode: "4",
		PaymentID:  "X",
	}))
	require.NoError(t, c.Settle())
	c.Receipt = domain.NewReceipt(c, charge.Card.Number, at)
	return c
}

func TestListPlans(t *testing.T) {
	router := newRouter(t, nil, nil, nil)

	rr, res := do(t, router, http.MethodGet, "/plans", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, res.Success)

	var view handlers.CatalogView
	require.NoError(t, json.Unmarshal(res.Data, &view))
	require.Len(t, view.Plans, 5)
	assert.Equal(t, "30d", view.Plans[0].ID)
	assert.Equal(t, "1590.00", view.Plans[0].Price)
	assert.Equal(t, "0.015", view.MonthlyInterestRate)
	assert.Equal(t, 12, view.MaxInstallments)
	assert.Contains(t, view.Brands, domain.BrandElo)
}

func TestCheckoutForm(t *testing.T) {
	router := newRouter(t, nil, nil, nil)

	t.Run("known plan", func(t *testing.T) {
		rr, res := do(t, router, http.MethodGet, "/checkout/3m", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var view handlers.CheckoutFormView
		require.NoError(t, json.Unmarshal(res.Data, &view))
		assert.Equal(t, "3m", view.Plan.ID)
		require.Len(t, view.Installments, 12)
		assert.Equal(t, "1260.00", view.Installments[0].PerInstallment)
		assert.Equal(t, "432.66", view.Installments[2].PerInstallment)
		assert.Equal(t, int64(129798), view.Installments[2].AmountCents)
	})

	t.Run("unknown plan", func(t *testing.T) {
		rr, res := do(t, router, http.MethodGet, "/checkout/99m", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.False(t, res.Success)
		assert.Equal(t, "invalid plan", res.Message)
	})

	t.Run("donation form", func(t *testing.T) {
		rr, res := do(t, router, http.MethodGet, "/checkout/donation", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var view handlers.DonationFormView
		require.NoError(t, json.Unmarshal(res.Data, &view))
		assert.Equal(t, "1.00", view.Amount)
		assert.Equal(t, int64(100), view.AmountCents)
	})
}

func TestPayPlan_Success(t *testing.T) {
	var got services.PlanPaymentCommand
	checkout := &mockCheckoutService{
		payPlanFn: func(ctx context.Context, cmd services.PlanPaymentCommand) (*domain.Checkout, error) {
			got = cmd
			return authorizedCheckout(t), nil
		},
	}
	router := newRouter(t, checkout, nil, nil)

	rr, res := do(t, router, http.MethodPost, "/payments", map[string]any{
		"plan_id":      "3m",
		"installments": 3,
		"phone":        "11987654321",
		"email":        "ana@example.com",
		"postal_code":  "01310100",
		"cpf":          "52998224725",
		"holder":       "Ana",
		"brand":        "Visa",
		"card_number":  "4111111111111111",
		"expiration":   "12/2030",
		"cvv":          "123",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, res.Success)
	assert.Equal(t, "Payment authorized/pending.", res.Message)
	assert.Equal(t, 3, got.Installments)
	assert.Equal(t, "01310100", got.PostalCode)

	var view handlers.CheckoutView
	require.NoError(t, json.Unmarshal(res.Data, &view))
	assert.Equal(t, "AUTHORIZED_ONLY", view.State)
	assert.Equal(t, "authorized", view.StatusText)
	assert.Equal(t, "**** **** **** 1111", view.MaskedCard)
	assert.Equal(t, "X", view.PaymentID)
	assert.Equal(t, int64(129798), view.AmountCents)
	assert.Equal(t, "17/10/2026 14:30", view.Timestamp)
	assert.NotContains(t, rr.Body.String(), "4111111111111111")
}

func TestPayPlan_DefaultsToOneInstallment(t *testing.T) {
	var got services.PlanPaymentCommand
	checkout := &mockCheckoutService{
		payPlanFn: func(ctx context.Context, cmd services.PlanPaymentCommand) (*domain.Checkout, error) {
			got = cmd
			return authorizedCheckout(t), nil
		},
	}
	router := newRouter(t, checkout, nil, nil)

	rr, _ := do(t, router, http.MethodPost, "/payments", map[string]any{"plan_id": "30d"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, got.Installments)
}

func TestPayPlan_Failures(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "validation",
			err:            application.NewValidationError(&domain.ValidationError{Field: domain.FieldNationalID, Message: "invalid CPF"}),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid CPF",
		},
		{
			name:           "gateway",
			err:            application.NewGatewayError("process payment", errors.New("connection reset")),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "failed to process payment: connection reset",
		},
		{
			name:           "internal",
			err:            application.NewInternalError(errors.New("invalid checkout state transition")),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkout := &mockCheckoutService{
				payPlanFn: func(ctx context.Context, cmd services.PlanPaymentCommand) (*domain.Checkout, error) {
					return nil, tt.err
				},
			}
			router := newRouter(t, checkout, nil, nil)

			rr, res := do(t, router, http.MethodPost, "/payments", map[string]any{"plan_id": "3m"})

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.False(t, res.Success)
			assert.Equal(t, tt.expectedMsg, res.Message)
		})
	}
}

func TestPayPlan_MalformedBody(t *testing.T) {
	router := newRouter(t, &mockCheckoutService{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid request body")
}

func TestDonate(t *testing.T) {
	var got services.DonationCommand
	checkout := &mockCheckoutService{
		donateFn: func(ctx context.Context, cmd services.DonationCommand) (*domain.Checkout, error) {
			got = cmd
			c := domain.NewCheckout(domain.FlowDonation, time.Now())
			require.NoError(t, c.Validate(domain.DonationLabel, 1, domain.DonationAmount, domain.DonationAmount, 100))
			charge, err := domain.NewChargeRequest("don-ab12cd34", "Doador",
				domain.Card{Number: "5555555555554444", Brand: domain.BrandMaster}, 100, 1, domain.ChargeOptions{Capture: true})
			require.NoError(t, err)
			require.NoError(t, c.ChargeCreated(charge, &domain.GatewayResult{Status: intPtr(1), PaymentID: "D"}))
			require.NoError(t, c.Capture())
			return c, nil
		},
	}
	router := newRouter(t, checkout, nil, nil)

	rr, res := do(t, router, http.MethodPost, "/donations", map[string]any{
		"brand":       "Master",
		"card_number": "5555555555554444",
		"expiration":  "12/2030",
		"cvv":         "123",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Donation captured successfully.", res.Message)
	assert.Equal(t, "Master", got.Brand)

	var view handlers.CheckoutView
	require.NoError(t, json.Unmarshal(res.Data, &view))
	assert.Equal(t, "CAPTURED", view.State)
	assert.Equal(t, "captured", view.StatusText)
	assert.Equal(t, int64(100), view.AmountCents)
}

func TestCapturePayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got services.CaptureCommand
		capture := &mockCaptureService{
			captureFn: func(ctx context.Context, cmd services.CaptureCommand) (*domain.GatewayAck, error) {
				got = cmd
				return &domain.GatewayAck{Status: intPtr(2), ReturnCode: "6"}, nil
			},
		}
		router := newRouter(t, nil, capture, nil)

		rr, res := do(t, router, http.MethodPost, "/payments/PAY-1/capture", map[string]any{"amount_cents": 129798})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Payment captured successfully.", res.Message)
		assert.Equal(t, services.CaptureCommand{PaymentID: "PAY-1", Amount: 129798}, got)

		var view handlers.SettlementView
		require.NoError(t, json.Unmarshal(res.Data, &view))
		assert.Equal(t, "captured", view.StatusText)
		assert.Equal(t, "PAY-1", view.PaymentID)
	})

	t.Run("missing amount", func(t *testing.T) {
		router := newRouter(t, nil, &mockCaptureService{}, nil)

		rr, res := do(t, router, http.MethodPost, "/payments/PAY-1/capture", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, res.Success)
	})

	t.Run("gateway failure", func(t *testing.T) {
		capture := &mockCaptureService{
			captureFn: func(ctx context.Context, cmd services.CaptureCommand) (*domain.GatewayAck, error) {
				return nil, application.NewGatewayError("capture", errors.New("sale not found"))
			},
		}
		router := newRouter(t, nil, capture, nil)

		rr, res := do(t, router, http.MethodPost, "/payments/PAY-1/capture", map[string]any{"amount_cents": 100})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "failed to capture: sale not found", res.Message)
	})
}

func TestVoidPayment(t *testing.T) {
	var got services.VoidCommand
	void := &mockVoidService{
		voidFn: func(ctx context.Context, cmd services.VoidCommand) (*domain.GatewayAck, error) {
			got = cmd
			return &domain.GatewayAck{Status: intPtr(10)}, nil
		},
	}
	router := newRouter(t, nil, nil, void)

	rr, res := do(t, router, http.MethodPost, "/payments/PAY-2/void", map[string]any{"amount_cents": 100})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Payment voided.", res.Message)
	assert.Equal(t, services.VoidCommand{PaymentID: "PAY-2", Amount: 100}, got)
}

func TestHealthAndMetrics(t *testing.T) {
	router := newRouter(t, nil, nil, nil)

	rr, _ := do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
