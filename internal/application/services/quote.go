package services

import (
	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// PlanQuote is a plan with its full installment table.
type PlanQuote struct {
	Plan   domain.Plan
	Quotes []domain.Quote
}

// QuoteService answers catalog and pricing questions. It never calls the gateway.
type QuoteService struct {
	catalog     *domain.Catalog
	monthlyRate decimal.Decimal
}

func NewQuoteService(catalog *domain.Catalog, monthlyRate decimal.Decimal) *QuoteService {
	return &QuoteService{
		catalog:     catalog,
		monthlyRate: monthlyRate,
	}
}

func (s *QuoteService) Plans() []domain.Plan {
	return s.catalog.Plans()
}

func (s *QuoteService) MonthlyRate() decimal.Decimal {
	return s.monthlyRate
}

func (s *QuoteService) Quote(planID string) (*PlanQuote, error) {
	plan, err := s.catalog.Plan(planID)
	if err != nil {
		return nil, application.NewValidationError(err)
	}
	return &PlanQuote{
		Plan:   plan,
		Quotes: domain.QuoteTable(plan, s.monthlyRate),
	}, nil
}
