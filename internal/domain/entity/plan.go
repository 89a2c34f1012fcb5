package entity

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Plan is one box in the subscription catalogue.
type Plan struct {
	Code          string
	Name          string
	PriceMonthly  decimal.Decimal
	Currency      string
	PairsPerMonth int
	Description   string
	Features      []string
}

// Catalog is the ordered plan list; a plan index is a position in it.
type Catalog []Plan

// Resolve returns the plan at index, falling back to the first plan when the
// index is out of range. A stale intent therefore always resolves to something safe.
func (c Catalog) Resolve(index int) (int, Plan) {
	if len(c) == 0 {
		return 0, Plan{}
	}
	if index < 0 || index >= len(c) {
		return 0, c[0]
	}

	return index, c[index]
}

// ByCode looks a plan up by its code.
func (c Catalog) ByCode(code string) (Plan, bool) {
	for _, p := range c {
		if p.Code == code {
			return p, true
		}
	}

	return Plan{}, false
}

// ParsePlanIndex parses a plan index query value. Anything unparsable yields -1,
// which Resolve maps to the default plan.
func ParsePlanIndex(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1
	}

	return n
}

// DefaultCatalog is used when the configuration does not define plans.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Code:          "basic",
			Name:          "Basic Box",
			PriceMonthly:  decimal.RequireFromString("29.90"),
			Currency:      "CNY",
			PairsPerMonth: 2,
			Description:   "Two pairs of everyday cotton socks every month",
			Features:      []string{"2 curated pairs a month", "Free delivery", "Cancel anytime"},
		},
		{
			Code:          "standard",
			Name:          "Standard Box",
			PriceMonthly:  decimal.RequireFromString("49.90"),
			Currency:      "CNY",
			PairsPerMonth: 4,
			Description:   "Four pairs of hand-picked socks every month",
			Features:      []string{"4 curated pairs a month", "Free delivery", "Priority shipping", "Exclusive designs", "Cancel anytime"},
		},
		{
			Code:          "premium",
			Name:          "Premium Box",
			PriceMonthly:  decimal.RequireFromString("79.90"),
			Currency:      "CNY",
			PairsPerMonth: 6,
			Description:   "Six pairs of premium socks every month",
			Features:      []string{"6 curated pairs a month", "Free delivery", "Priority shipping", "Exclusive designs", "Quarterly gift box", "Cancel anytime"},
		},
	}
}
