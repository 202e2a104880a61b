package cielo

import "github.com/DanielPopoola/centroeduc-checkout/internal/domain"

const paymentTypeCreditCard = "CreditCard"

type SaleRequest struct {
	MerchantOrderID string         `json:"MerchantOrderId"`
	Customer        Customer       `json:"Customer"`
	Payment         PaymentRequest `json:"Payment"`
}

type Customer struct {
	Name string `json:"Name"`
}

type PaymentRequest struct {
	Type           string     `json:"Type"`
	Amount         int64      `json:"Amount"`
	Installments   int        `json:"Installments"`
	SoftDescriptor string     `json:"SoftDescriptor,omitempty"`
	Capture        bool       `json:"Capture"`
	Authenticate   bool       `json:"Authenticate"`
	CreditCard     CreditCard `json:"CreditCard"`
}

type CreditCard struct {
	CardNumber     string `json:"CardNumber"`
	Holder         string `json:"Holder"`
	ExpirationDate string `json:"ExpirationDate"`
	SecurityCode   string `json:"SecurityCode"`
	Brand          string `json:"Brand"`
}

type SaleResponse struct {
	MerchantOrderID string          `json:"MerchantOrderId"`
	Payment         PaymentResponse `json:"Payment"`
}

type PaymentResponse struct {
	PaymentID         string `json:"PaymentId"`
	Status            *int   `json:"Status"`
	ReturnCode        string `json:"ReturnCode"`
	ReturnMessage     string `json:"ReturnMessage"`
	AuthenticationURL string `json:"AuthenticationUrl"`
}

// AckResponse is the body returned by capture and void.
type AckResponse struct {
	Status        *int   `json:"Status"`
	ReturnCode    string `json:"ReturnCode"`
	ReturnMessage string `json:"ReturnMessage"`
}

func newSaleRequest(req domain.ChargeRequest) SaleRequest {
	return SaleRequest{
		MerchantOrderID: req.OrderID,
		Customer:        Customer{Name: req.CustomerName},
		Payment: PaymentRequest{
			Type:           paymentTypeCreditCard,
			Amount:         req.AmountCents,
			Installments:   req.Installments,
			SoftDescriptor: req.SoftDescriptor,
			Capture:        req.Capture,
			Authenticate:   req.Authenticate,
			CreditCard: CreditCard{
				CardNumber:     req.Card.Number,
				Holder:         req.Card.Holder,
				ExpirationDate: req.Card.Expiration.String(),
				SecurityCode:   req.Card.CVV,
				Brand:          string(req.Card.Brand),
			},
		},
	}
}

func (r SaleResponse) toResult() *domain.GatewayResult {
	return &domain.GatewayResult{
		Status:            r.Payment.Status,
		ReturnCode:        r.Payment.ReturnCode,
		ReturnMessage:     r.Payment.ReturnMessage,
		PaymentID:         r.Payment.PaymentID,
		AuthenticationURL: r.Payment.AuthenticationURL,
	}
}

func (r AckResponse) toAck() *domain.GatewayAck {
	return &domain.GatewayAck{
		Status:        r.Status,
		ReturnCode:    r.ReturnCode,
		ReturnMessage: r.ReturnMessage,
	}
}
