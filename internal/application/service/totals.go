package service

import (
	"github.com/shopspring/decimal"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
)

// TaxRate is the fixed rate applied when the active template shows tax.
var TaxRate = decimal.RequireFromString("0.0825")

var hundred = decimal.NewFromInt(100)

// Totals are the derived monetary figures. They are never stored on the
// Receipt; they are always recomputed from items plus template flags,
// exactly, with rounding deferred to display formatting.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	BalanceDue decimal.Decimal `json:"balance_due"`
	ShowTax    bool            `json:"show_tax"`
}

// ComputeTotals derives subtotal, tax, grand total and balance due from a
// receipt. Pure: same receipt, same totals, in any item order.
func ComputeTotals(r *entity.Receipt) Totals {
	subtotal := decimal.Zero
	for _, it := range r.Items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
	}

	tax := decimal.Zero
	if r.Template.ShowTax {
		tax = subtotal.Mul(TaxRate)
	}

	t := Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
		ShowTax:    r.Template.ShowTax,
	}
	if r.Template.Fields.BalancePayment && r.BalancePayment > 0 {
		t.BalanceDue = decimal.NewFromFloat(r.BalancePayment)
	}
	return t
}
