package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CardBrand is a card network the gateway accepts.
type CardBrand string

const (
	BrandVisa      CardBrand = "Visa"
	BrandMaster    CardBrand = "Master"
	BrandAmex      CardBrand = "Amex"
	BrandElo       CardBrand = "Elo"
	BrandHipercard CardBrand = "Hipercard"
	BrandDiners    CardBrand = "Diners"
	BrandDiscover  CardBrand = "Discover"
)

var supportedBrands = []CardBrand{
	BrandVisa,
	BrandMaster,
	BrandAmex,
	BrandElo,
	BrandHipercard,
	BrandDiners,
	BrandDiscover,
}

// SupportedBrands returns the brands in display order.
func SupportedBrands() []CardBrand {
	return slices.Clone(supportedBrands)
}

// ParseCardBrand accepts only the exact brand names the gateway uses.
func ParseCardBrand(raw string) (CardBrand, error) {
	brand := CardBrand(raw)
	if !slices.Contains(supportedBrands, brand) {
		return "", newValidationError(FieldCardBrand, "invalid card brand")
	}
	return brand, nil
}

// DonationAmount is the fixed donation value in BRL.
var DonationAmount = decimal.RequireFromString("1.00")

const (
	DonationLabel = "Donation"
	// IssuerIdentification is printed at the bottom of every receipt.
	IssuerIdentification = "CNPJ: 54.863.268/0001-86"
	// MerchantName heads every receipt.
	MerchantName = "Centro de Consultoria Educacional"
)
