package domain_test

import (
	"testing"

	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	catalog, err := domain.NewCatalog(domain.DefaultPlans())
	require.NoError(t, err)

	t.Run("resolves plans by ID", func(t *testing.T) {
		plan, err := catalog.Plan("3m")
		require.NoError(t, err)
		assert.Equal(t, 3, plan.TermMonths)
		assert.Equal(t, "1260.00", plan.Price.StringFixed(2))
	})

	t.Run("rejects unknown plans", func(t *testing.T) {
		_, err := catalog.Plan("24m")
		require.Error(t, err)
		assert.Equal(t, "invalid plan", err.Error())
		assert.True(t, domain.IsFieldError(err, domain.FieldPlan))
	})

	t.Run("keeps display order and hands out copies", func(t *testing.T) {
		plans := catalog.Plans()
		require.Len(t, plans, 5)
		assert.Equal(t, "30d", plans[0].ID)
		assert.Equal(t, "12m", plans[4].ID)

		plans[0].Label = "changed"
		again, _ := catalog.Plan("30d")
		assert.Equal(t, "Conclusão em 30 dias", again.Label)
	})
}

func TestNewCatalog_Invalid(t *testing.T) {
	_, err := domain.NewCatalog(nil)
	assert.Error(t, err)

	_, err = domain.NewCatalog([]domain.Plan{{ID: "a", Price: dec("1")}, {ID: "a", Price: dec("2")}})
	assert.ErrorContains(t, err, "duplicate plan ID")

	_, err = domain.NewCatalog([]domain.Plan{{ID: "", Price: dec("1")}})
	assert.ErrorContains(t, err, "plan ID is required")

	_, err = domain.NewCatalog([]domain.Plan{{ID: "a", Price: dec("-1")}})
	assert.ErrorContains(t, err, "negative price")
}

func TestQuoteTable(t *testing.T) {
	plan := domain.Plan{ID: "3m", Price: dec("1260.00")}

	quotes := domain.QuoteTable(plan, dec("0.015"))
	require.Len(t, quotes, domain.MaxInstallments)

	assert.Equal(t, 1, quotes[0].Installments)
	assert.Equal(t, "1260.00", quotes[0].Total.StringFixed(2))
	assert.Equal(t, int64(126000), quotes[0].AmountCents)

	assert.Equal(t, "432.66", quotes[2].PerInstallment.StringFixed(2))
	assert.Equal(t, "1297.98", quotes[2].Total.StringFixed(2))
	assert.Equal(t, int64(129798), quotes[2].AmountCents)

	assert.Equal(t, "115.52", quotes[11].PerInstallment.StringFixed(2))
	assert.Equal(t, int64(138624), quotes[11].AmountCents)

	_, err := domain.QuotePlan(plan, dec("0.015"), 13)
	assert.True(t, domain.IsFieldError(err, domain.FieldInstallments))
}
