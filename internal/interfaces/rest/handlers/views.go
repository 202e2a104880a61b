package handlers

import (
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
)

type PlanView struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	TermMonths int    `json:"term_months"`
	Price      string `json:"price"`
}

type QuoteView struct {
	Installments   int    `json:"installments"`
	PerInstallment string `json:"per_installment"`
	Total          string `json:"total"`
	AmountCents    int64  `json:"amount_cents"`
}

type CatalogView struct {
	Plans               []PlanView         `json:"plans"`
	Brands              []domain.CardBrand `json:"brands"`
	MonthlyInterestRate string             `json:"monthly_interest_rate"`
	MaxInstallments     int                `json:"max_installments"`
}

type CheckoutFormView struct {
	Plan                PlanView           `json:"plan"`
	Brands              []domain.CardBrand `json:"brands"`
	MonthlyInterestRate string             `json:"monthly_interest_rate"`
	MaxInstallments     int                `json:"max_installments"`
	Installments        []QuoteView        `json:"installments"`
}

type DonationFormView struct {
	Brands      []domain.CardBrand `json:"brands"`
	Amount      string             `json:"amount"`
	AmountCents int64              `json:"amount_cents"`
}

// CheckoutView is the result page of a finished checkout. Card data is masked.
type CheckoutView struct {
	State             string `json:"state"`
	ProductLabel      string `json:"product_label"`
	Installments      int    `json:"installments"`
	PerInstallment    string `json:"per_installment"`
	Total             string `json:"total"`
	AmountCents       int64  `json:"amount_cents"`
	Brand             string `json:"brand"`
	MaskedCard        string `json:"masked_card"`
	OrderID           string `json:"order_id"`
	PaymentID         string `json:"payment_id"`
	StatusCode        *int   `json:"status_code"`
	StatusText        string `json:"status_text"`
	ReturnCode        string `json:"return_code,omitempty"`
	ReturnCodeText    string `json:"return_code_text"`
	AuthenticationURL string `json:"authentication_url,omitempty"`
	Timestamp         string `json:"timestamp"`
	ReceiptText       string `json:"receipt_text"`
}

// SettlementView is the result of a standalone capture or void.
type SettlementView struct {
	PaymentID      string `json:"payment_id"`
	AmountCents    int64  `json:"amount_cents"`
	StatusCode     *int   `json:"status_code"`
	StatusText     string `json:"status_text"`
	ReturnCode     string `json:"return_code,omitempty"`
	ReturnCodeText string `json:"return_code_text"`
	Timestamp      string `json:"timestamp"`
}

func toPlanView(p domain.Plan) PlanView {
	return PlanView{
		ID:         p.ID,
		Label:      p.Label,
		TermMonths: p.TermMonths,
		Price:      p.Price.StringFixed(2),
	}
}

func toQuoteViews(quotes []domain.Quote) []QuoteView {
	views := make([]QuoteView, 0, len(quotes))
	for _, q := range quotes {
		views = append(views, QuoteView{
			Installments:   q.Installments,
			PerInstallment: q.PerInstallment.StringFixed(2),
			Total:          q.Total.StringFixed(2),
			AmountCents:    q.AmountCents,
		})
	}
	return views
}

func toCheckoutView(c *domain.Checkout) CheckoutView {
	view := CheckoutView{
		State:          string(c.State),
		ProductLabel:   c.Label,
		Installments:   c.Installments,
		PerInstallment: c.PerInstallment.StringFixed(2),
		Total:          c.Total.StringFixed(2),
		AmountCents:    c.AmountCents,
		Brand:          string(c.Brand),
		MaskedCard:     c.MaskedCard,
		OrderID:        c.OrderID,
		StatusCode:     c.StatusCode,
		StatusText:     c.StatusText(),
	}
	if c.Result != nil {
		view.PaymentID = c.Result.PaymentID
		view.ReturnCode = c.Result.ReturnCode
		view.ReturnCodeText = domain.ReturnCodeText(c.Result.ReturnCode)
		view.AuthenticationURL = c.Result.AuthenticationURL
	}
	if c.Receipt != nil {
		view.Timestamp = c.Receipt.Timestamp
		view.ReceiptText = c.Receipt.Text()
	}
	return view
}

func toSettlementView(paymentID string, amountCents int64, ack *domain.GatewayAck, timestamp string) SettlementView {
	view := SettlementView{
		PaymentID:   paymentID,
		AmountCents: amountCents,
		Timestamp:   timestamp,
		StatusText:  domain.StatusText(nil),
	}
	if ack != nil {
		view.StatusCode = ack.Status
		view.StatusText = domain.StatusText(ack.Status)
		view.ReturnCode = ack.ReturnCode
		view.ReturnCodeText = domain.ReturnCodeText(ack.ReturnCode)
	}
	return view
}
