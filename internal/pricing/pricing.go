// Package pricing turns basket lines into priced line items and totals.
// Every function here is pure: the same lines and catalog always produce
// the same result, whatever order the lines come in.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Juan171109/automation-task/internal/models"
)

// ProductLookup resolves product codes to products
type ProductLookup interface {
	Lookup(code string) (models.Product, bool)
}

// LineItem is a basket line priced against the catalog
type LineItem struct {
	Product  models.Product
	Quantity int
	Subtotal decimal.Decimal
}

// Summary is the priced view of a basket
type Summary struct {
	Lines []LineItem
	Total decimal.Decimal
}

// Compute prices every line that resolves to a product. Lines that do not
// resolve are left out of both the items and the total.
func Compute(lines []models.BasketLine, lookup ProductLookup) Summary {
	items := make([]LineItem, 0, len(lines))
	total := decimal.Zero

	for _, l := range lines {
		p, ok := lookup.Lookup(l.ProductCode)
		if !ok || l.Quantity < 1 {
			continue
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		items = append(items, LineItem{
			Product:  p,
			Quantity: l.Quantity,
			Subtotal: subtotal,
		})
		total = total.Add(subtotal)
	}

	return Summary{
		Lines: items,
		Total: total.Round(2),
	}
}

// ComputeTotal returns the basket total rounded half-up to two places
func ComputeTotal(lines []models.BasketLine, lookup ProductLookup) decimal.Decimal {
	return Compute(lines, lookup).Total
}

// FormatAmount renders an amount as "$9.48"
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatTotal renders a total as "Total: $9.48"
func FormatTotal(d decimal.Decimal) string {
	return "Total: " + FormatAmount(d)
}

// FormattedSubtotal renders the line subtotal
func (l LineItem) FormattedSubtotal() string {
	return FormatAmount(l.Subtotal)
}

// FormattedTotal renders the summary total
func (s Summary) FormattedTotal() string {
	return FormatTotal(s.Total)
}

// IsEmpty returns true if no line was priced
func (s Summary) IsEmpty() bool {
	return len(s.Lines) == 0
}
