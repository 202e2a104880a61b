package cielo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
	"github.com/DanielPopoola/centroeduc-checkout/internal/config"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	salesPath   = "/1/sales/"
	capturePath = "/1/sales/{paymentId}/capture"
	voidPath    = "/1/sales/{paymentId}/void"
)

// Client talks to the Cielo e-commerce transactional API. Every call is made
// once; there are no retries.
type Client struct {
	http   *resty.Client
	tracer trace.Tracer
}

var _ application.Gateway = (*Client)(nil)

func NewClient(cfg config.CieloConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.APIURL()).
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("MerchantId", cfg.MerchantID).
		SetHeader("MerchantKey", cfg.MerchantKey)

	// Zero keeps resty's default of no timeout.
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:   httpClient,
		tracer: otel.Tracer("github.com/DanielPopoola/centroeduc-checkout/internal/infrastructure/cielo"),
	}
}

func (c *Client) CreateSale(ctx context.Context, req domain.ChargeRequest) (*domain.GatewayResult, error) {
	ctx, span := c.tracer.Start(ctx, "cielo.CreateSale", trace.WithAttributes(
		attribute.String("cielo.order_id", req.OrderID),
		attribute.Int64("cielo.amount", req.AmountCents),
		attribute.Int("cielo.installments", req.Installments),
	))
	defer span.End()

	var sale SaleResponse
	r := c.request(ctx).SetBody(newSaleRequest(req))
	if err := c.execute(r, http.MethodPost, salesPath, &sale); err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("cielo.payment_id", sale.Payment.PaymentID))
	return sale.toResult(), nil
}

func (c *Client) CaptureSale(ctx context.Context, paymentID string, amountCents, serviceFeeCents int64) (*domain.GatewayAck, error) {
	ctx, span := c.tracer.Start(ctx, "cielo.CaptureSale", trace.WithAttributes(
		attribute.String("cielo.payment_id", paymentID),
		attribute.Int64("cielo.amount", amountCents),
	))
	defer span.End()

	var ack AckResponse
	r := c.request(ctx).
		SetPathParam("paymentId", paymentID).
		SetQueryParam("amount", strconv.FormatInt(amountCents, 10)).
		SetQueryParam("serviceTaxAmount", strconv.FormatInt(serviceFeeCents, 10))
	if err := c.execute(r, http.MethodPut, capturePath, &ack); err != nil {
		recordError(span, err)
		return nil, err
	}
	return ack.toAck(), nil
}

func (c *Client) VoidSale(ctx context.Context, paymentID string, amountCents int64) (*domain.GatewayAck, error) {
	ctx, span := c.tracer.Start(ctx, "cielo.VoidSale", trace.WithAttributes(
		attribute.String("cielo.payment_id", paymentID),
		attribute.Int64("cielo.amount", amountCents),
	))
	defer span.End()

	var ack AckResponse
	r := c.request(ctx).
		SetPathParam("paymentId", paymentID).
		SetQueryParam("amount", strconv.FormatInt(amountCents, 10))
	if err := c.execute(r, http.MethodPut, voidPath, &ack); err != nil {
		recordError(span, err)
		return nil, err
	}
	return ack.toAck(), nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("RequestId", uuid.NewString())
}

func (c *Client) execute(r *resty.Request, method, path string, out any) error {
	resp, err := r.Execute(method, path)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}

	if resp.IsError() {
		return newAPIError(resp.StatusCode(), resp.Body())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("error decoding json response: %w", err)
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
