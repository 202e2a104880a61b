package cielo_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/config"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/DanielPopoola/centroeduc-checkout/internal/infrastructure/cielo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *cielo.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return cielo.NewClient(config.CieloConfig{
		MerchantID:  "merchant-id",
		MerchantKey: "merchant-key",
		BaseURL:     server.URL,
	})
}

func testCharge(t *testing.T) domain.ChargeRequest {
	t.Helper()
	exp, err := domain.ParseExpiration("7/2030", time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	req, err := domain.NewChargeRequest(
		"ab12cd34",
		"Ana Souza",
		domain.Card{
			Number:     "4111111111111111",
			CVV:        "123",
			Brand:      domain.BrandVisa,
			Expiration: exp,
			Holder:     "ANA SOUZA",
		},
		129798,
		3,
		domain.ChargeOptions{Capture: false, Authenticate: true, SoftDescriptor: "CENTROEDUC"},
	)
	require.NoError(t, err)
	return req
}

func TestClient_CreateSale(t *testing.T) {
	var requestIDs []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/1/sales/", r.URL.Path)
		assert.Equal(t, "merchant-id", r.Header.Get("MerchantId"))
		assert.Equal(t, "merchant-key", r.Header.Get("MerchantKey"))
		requestIDs = append(requestIDs, r.Header.Get("RequestId"))

		var body cielo.SaleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ab12cd34", body.MerchantOrderID)
		assert.Equal(t, "Ana Souza", body.Customer.Name)
		assert.Equal(t, "CreditCard", body.Payment.Type)
		assert.Equal(t, int64(129798), body.Payment.Amount)
		assert.Equal(t, 3, body.Payment.Installments)
		assert.False(t, body.Payment.Capture)
		assert.True(t, body.Payment.Authenticate)
		assert.Equal(t, "CENTROEDUC", body.Payment.SoftDescriptor)
		assert.Equal(t, "07/2030", body.Payment.CreditCard.ExpirationDate)
		assert.Equal(t, "Visa", body.Payment.CreditCard.Brand)
		assert.Equal(t, "ANA SOUZA", body.Payment.CreditCard.Holder)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{
			"MerchantOrderId": "ab12cd34",
			"Payment": {
				"PaymentId": "24bc8366-fc31-4d6c-8555-17049a836a07",
				"Status": 1,
				"ReturnCode": "4",
				"ReturnMessage": "Operation Successful",
				"AuthenticationUrl": "https://example.test/3ds"
			}
		}`)
	})

	result, err := client.CreateSale(context.Background(), testCharge(t))

	require.NoError(t, err)
	require.NotNil(t, result.Status)
	assert.Equal(t, 1, *result.Status)
	assert.Equal(t, "4", result.ReturnCode)
	assert.Equal(t, "Operation Successful", result.ReturnMessage)
	assert.Equal(t, "24bc8366-fc31-4d6c-8555-17049a836a07", result.PaymentID)
	assert.Equal(t, "https://example.test/3ds", result.AuthenticationURL)

	require.Len(t, requestIDs, 1)
	assert.NotEmpty(t, requestIDs[0])
}

func TestClient_CreateSale_MissingStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"Payment": {"PaymentId": "P"}}`)
	})

	result, err := client.CreateSale(context.Background(), testCharge(t))

	require.NoError(t, err)
	assert.Nil(t, result.Status)
	assert.Equal(t, "Unknown (not informed)", domain.StatusText(result.Status))
}

func TestClient_CreateSale_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `[{"Code": 126, "Message": "Credit Card Expiration Date is invalid"}]`)
	})

	_, err := client.CreateSale(context.Background(), testCharge(t))

	require.Error(t, err)
	apiErr, ok := cielo.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, 126, apiErr.Details[0].Code)
	assert.Contains(t, err.Error(), "Credit Card Expiration Date is invalid")
}

func TestClient_CreateSale_UnstructuredError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "upstream unavailable\n")
	})

	_, err := client.CreateSale(context.Background(), testCharge(t))

	apiErr, ok := cielo.IsAPIError(err)
	require.True(t, ok)
	assert.Empty(t, apiErr.Details)
	assert.Equal(t, "cielo returned status 500: upstream unavailable", err.Error())
}

func TestClient_CaptureSale(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/1/sales/PAY-1/capture", r.URL.Path)
		assert.Equal(t, "129798", r.URL.Query().Get("amount"))
		assert.Equal(t, "0", r.URL.Query().Get("serviceTaxAmount"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"Status": 2, "ReturnCode": "6", "ReturnMessage": "Operation Successful"}`)
	})

	ack, err := client.CaptureSale(context.Background(), "PAY-1", 129798, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, *ack.Status)
	assert.Equal(t, "6", ack.ReturnCode)
}

func TestClient_VoidSale(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/1/sales/PAY-1/void", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("amount"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"Status": 10, "ReturnCode": "9", "ReturnMessage": "Operation Successful"}`)
	})

	ack, err := client.VoidSale(context.Background(), "PAY-1", 100)

	require.NoError(t, err)
	assert.Equal(t, "voided", domain.StatusText(ack.Status))
}

func TestClient_VoidSale_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.VoidSale(context.Background(), "missing", 100)

	apiErr, ok := cielo.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "cielo returned status 404", err.Error())
}

func TestClient_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := cielo.NewClient(config.CieloConfig{BaseURL: url})

	_, err := client.CreateSale(context.Background(), testCharge(t))

	require.Error(t, err)
	_, ok := cielo.IsAPIError(err)
	assert.False(t, ok)
}
