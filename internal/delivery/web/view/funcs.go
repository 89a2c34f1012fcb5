package view

import (
	"encoding/base64"
	"html/template"
	"strings"
	"time"

	"socksflow/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"CNY": "¥",
	"USD": "$",
	"EUR": "€",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money":    money,
		"date":     date,
		"dateptr":  datePtr,
		"pngURI":   pngURI,
		"trusted":  trusted,
		"join":     strings.Join,
		"title":    titleCase,
		"add":      func(a, b int) int { return a + b },
		"selected": func(a, b string) bool { return a == b },
		"planCard": newPlanCard,
	}
}

// planCard is the argument of the plan-card partial.
type planCard struct {
	Index int
	Plan  entity.Plan
}

func newPlanCard(index int, plan entity.Plan) planCard {
	return planCard{Index: index, Plan: plan}
}

// money formats an amount with its currency symbol and two decimals.
func money(amount decimal.Decimal, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		return amount.StringFixed(2) + " " + currency
	}

	return symbol + amount.StringFixed(2)
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("2006-01-02")
}

func datePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}

	return date(*t)
}

func pngURI(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}

// trusted marks HTML produced by the SocksFlow API (the payment hand-off form).
func trusted(s string) template.HTML {
	return template.HTML(s) //nolint:gosec // API-provided payment form
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
