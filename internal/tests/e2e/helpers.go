package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/infrastructure/cielo"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the checkout API
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Result mirrors the API's response envelope with the data left raw.
type Result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *TestClient) Post(t *testing.T, path string, body any) (int, Result) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return resp.StatusCode, res
}

func (c *TestClient) Get(t *testing.T, path string) (int, Result) {
	t.Helper()
	resp, err := c.httpClient.Get(c.baseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return resp.StatusCode, res
}

type fakeSale struct {
	request cielo.SaleRequest
	status  int
}

// FakeCielo emulates the acquirer sandbox: the outcome of a sale depends on
// the last digit of the card number.
type FakeCielo struct {
	mu       sync.Mutex
	sales    map[string]*fakeSale
	requests []*http.Request
	captures []string
	voids    []string

	Server *httptest.Server
}

func NewFakeCielo() *FakeCielo {
	f := &FakeCielo{sales: make(map[string]*fakeSale)}

	r := chi.NewRouter()
	r.Use(f.record)
	r.Post("/1/sales/", f.createSale)
	r.Put("/1/sales/{paymentID}/capture", f.capture)
	r.Put("/1/sales/{paymentID}/void", f.void)

	f.Server = httptest.NewServer(r)
	return f
}

func (f *FakeCielo) Close() {
	f.Server.Close()
}

func (f *FakeCielo) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sales = make(map[string]*fakeSale)
	f.requests = nil
	f.captures = nil
	f.voids = nil
}

func (f *FakeCielo) RequestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *FakeCielo) LastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func (f *FakeCielo) Sale(paymentID string) (cielo.SaleRequest, int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sale, ok := f.sales[paymentID]
	if !ok {
		return cielo.SaleRequest{}, 0, false
	}
	return sale.request, sale.status, true
}

func (f *FakeCielo) Captures() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.captures...)
}

func (f *FakeCielo) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()

		if r.Header.Get("MerchantId") == "" || r.Header.Get("MerchantKey") == "" {
			writeErrors(w, http.StatusUnauthorized, 129, "MerchantId is required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeCielo) createSale(w http.ResponseWriter, r *http.Request) {
	var req cielo.SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, 114, "Invalid request body")
		return
	}

	status, returnCode := sandboxOutcome(req.Payment.CreditCard.CardNumber, req.Payment.Capture)
	paymentID := uuid.NewString()

	f.mu.Lock()
	f.sales[paymentID] = &fakeSale{request: req, status: status}
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, cielo.SaleResponse{
		MerchantOrderID: req.MerchantOrderID,
		Payment: cielo.PaymentResponse{
			PaymentID:     paymentID,
			Status:        &status,
			ReturnCode:    returnCode,
			ReturnMessage: "Sandbox response",
		},
	})
}

func (f *FakeCielo) capture(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")
	amount, _ := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)

	f.mu.Lock()
	defer f.mu.Unlock()

	// Sales created with Capture set are already captured and acknowledge again.
	sale, ok := f.sales[paymentID]
	if !ok || (sale.status != 1 && sale.status != 2) || amount > sale.request.Payment.Amount {
		writeErrors(w, http.StatusBadRequest, 308, "Transaction not available to capture")
		return
	}
	sale.status = 2
	f.captures = append(f.captures, fmt.Sprintf("%s:%d:%s", paymentID, amount, r.URL.Query().Get("serviceTaxAmount")))

	status := sale.status
	writeJSON(w, http.StatusOK, cielo.AckResponse{Status: &status, ReturnCode: "6", ReturnMessage: "Operation Successful"})
}

func (f *FakeCielo) void(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	f.mu.Lock()
	defer f.mu.Unlock()

	sale, ok := f.sales[paymentID]
	if !ok || (sale.status != 1 && sale.status != 2) {
		writeErrors(w, http.StatusBadRequest, 309, "Transaction not available to void")
		return
	}
	sale.status = 10
	f.voids = append(f.voids, paymentID)

	status := sale.status
	writeJSON(w, http.StatusOK, cielo.AckResponse{Status: &status, ReturnCode: "9", ReturnMessage: "Operation Successful"})
}

// sandboxOutcome maps the final card digit to a sale status and return code.
func sandboxOutcome(cardNumber string, capture bool) (int, string) {
	last := cardNumber[len(cardNumber)-1]
	switch last {
	case '0', '1', '4':
		if capture {
			return 2, "6"
		}
		return 1, "4"
	case '2':
		return 3, "05"
	case '3':
		return 3, "57"
	case '5':
		return 3, "78"
	case '7':
		return 3, "77"
	case '8':
		return 3, "70"
	default:
		return 3, "99"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeErrors(w http.ResponseWriter, status, code int, message string) {
	writeJSON(w, status, []cielo.ErrorDetail{{Code: code, Message: message}})
}
