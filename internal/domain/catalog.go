package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Plan is an immutable catalog entry.
type Plan struct {
	ID         string
	Label      string
	TermMonths int
	Price      decimal.Decimal
}

// Catalog is the fixed, read-only set of plans offered for sale.
type Catalog struct {
	plans []Plan
	byID  map[string]Plan
}

// DefaultPlans is the catalog the service ships with.
func DefaultPlans() []Plan {
	return []Plan{
		{ID: "30d", Label: "Conclusão em 30 dias", TermMonths: 1, Price: decimal.RequireFromString("1590.00")},
		{ID: "3m", Label: "Conclusão em 3 meses", TermMonths: 3, Price: decimal.RequireFromString("1260.00")},
		{ID: "6m", Label: "Conclusão em 6 meses", TermMonths: 6, Price: decimal.RequireFromString("999.99")},
		{ID: "9m", Label: "Conclusão em 9 meses", TermMonths: 9, Price: decimal.RequireFromString("799.99")},
		{ID: "12m", Label: "Conclusão em 12 meses", TermMonths: 12, Price: decimal.RequireFromString("599.99")},
	}
}

func NewCatalog(plans []Plan) (*Catalog, error) {
	if len(plans) == 0 {
		return nil, errors.New("catalog needs at least one plan")
	}

	c := &Catalog{
		plans: make([]Plan, 0, len(plans)),
		byID:  make(map[string]Plan, len(plans)),
	}
	for _, p := range plans {
		if p.ID == "" {
			return nil, errors.New("plan ID is required")
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate plan ID %q", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("plan %q has a negative price", p.ID)
		}
		c.plans = append(c.plans, p)
		c.byID[p.ID] = p
	}
	return c, nil
}

// Plan resolves a plan by ID.
func (c *Catalog) Plan(id string) (Plan, error) {
	p, ok := c.byID[id]
	if !ok {
		return Plan{}, newValidationError(FieldPlan, "invalid plan")
	}
	return p, nil
}

// Plans returns the catalog in display order.
func (c *Catalog) Plans() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}
