package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptTimeLayout is the dd/mm/yyyy HH:MM stamp printed on receipts.
const ReceiptTimeLayout = "02/01/2006 15:04"

// Receipt is the customer-facing summary of a finished checkout.
type Receipt struct {
	ProductLabel   string
	Installments   int
	PerInstallment decimal.Decimal
	Brand          CardBrand
	MaskedCard     string
	LastFour       string
	OrderID        string
	PaymentID      string
	Timestamp      string
	StatusText     string
	Issuer         string
}

// NewReceipt builds the receipt of a checkout that reached the gateway.
func NewReceipt(c *Checkout, cardNumber string, at time.Time) *Receipt {
	r := &Receipt{
		ProductLabel:   c.Label,
		Installments:   c.Installments,
		PerInstallment: c.PerInstallment,
		Brand:          c.Brand,
		MaskedCard:     MaskCardNumber(cardNumber),
		OrderID:        c.OrderID,
		Timestamp:      at.Format(ReceiptTimeLayout),
		StatusText:     c.StatusText(),
		Issuer:         IssuerIdentification,
	}
	if cardNumber != "" {
		r.LastFour = lastN(cardNumber, 4)
	}
	if c.Result != nil {
		r.PaymentID = c.Result.PaymentID
	}
	return r
}

// Text renders the plain-text receipt the customer can forward.
func (r *Receipt) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Payment receipt - %s\n", MerchantName)
	fmt.Fprintf(&b, "Product: %s\n", r.ProductLabel)
	fmt.Fprintf(&b, "Installments: %dx of R$ %s\n", r.Installments, r.PerInstallment.StringFixed(2))
	fmt.Fprintf(&b, "Brand: %s\n", r.Brand)
	fmt.Fprintf(&b, "Card ending: %s\n", r.LastFour)
	fmt.Fprintf(&b, "Order: %s\n", r.OrderID)
	fmt.Fprintf(&b, "Payment: %s\n", r.PaymentID)
	fmt.Fprintf(&b, "Status: %s\n", r.StatusText)
	fmt.Fprintf(&b, "Date: %s\n", r.Timestamp)
	b.WriteString(r.Issuer)
	return b.String()
}
