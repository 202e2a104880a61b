package domain

import "github.com/shopspring/decimal"

// Quote is one line of an installment table.
type Quote struct {
	Installments   int
	PerInstallment decimal.Decimal
	Total          decimal.Decimal
	AmountCents    int64
}

// QuotePlan prices a plan for a given installment count.
func QuotePlan(plan Plan, monthlyRate decimal.Decimal, installments int) (Quote, error) {
	if installments < 1 || installments > MaxInstallments {
		return Quote{}, newValidationError(FieldInstallments, "invalid number of installments")
	}
	per := InstallmentAmount(plan.Price, monthlyRate, installments)
	total := InstallmentTotal(per, installments)
	return Quote{
		Installments:   installments,
		PerInstallment: per,
		Total:          total,
		AmountCents:    ToMinorUnits(total),
	}, nil
}

// QuoteTable prices a plan for every installment count from 1 to MaxInstallments.
func QuoteTable(plan Plan, monthlyRate decimal.Decimal) []Quote {
	quotes := make([]Quote, 0, MaxInstallments)
	for n := 1; n <= MaxInstallments; n++ {
		q, _ := QuotePlan(plan, monthlyRate, n)
		quotes = append(quotes, q)
	}
	return quotes
}
