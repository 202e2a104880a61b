package domain

import "github.com/shopspring/decimal"

// MaxInstallments is the largest installment count the acquirer accepts for a plan.
const MaxInstallments = 12

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// InstallmentAmount returns the value of each installment under the Price
// (annuity) formula: P * (r*(1+r)^n) / ((1+r)^n - 1), rounded to cents.
// A single installment or a non-positive rate means no interest is charged.
func InstallmentAmount(principal, monthlyRate decimal.Decimal, installments int) decimal.Decimal {
	if installments <= 1 || !monthlyRate.IsPositive() {
		return principal.Round(2)
	}

	growth := one
	base := one.Add(monthlyRate)
	for i := 0; i < installments; i++ {
		growth = growth.Mul(base)
	}

	factor := monthlyRate.Mul(growth).Div(growth.Sub(one))
	return principal.Mul(factor).Round(2)
}

// InstallmentTotal is what the card is actually charged: the rounded
// installment times the count. It can differ from rounding the unrounded
// total by a cent; receipts must show what the gateway charged.
func InstallmentTotal(perInstallment decimal.Decimal, installments int) decimal.Decimal {
	return perInstallment.Mul(decimal.NewFromInt(int64(installments))).Round(2)
}

// ToMinorUnits converts a BRL amount to integer centavos, rounding to nearest.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits converts centavos back to a BRL amount.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
