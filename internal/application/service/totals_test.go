package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/receiptforge/receiptforge-api/internal/domain/catalog"
	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
)

func mustTemplate(t *testing.T, id enum.TemplateID) entity.ReceiptTemplate {
	t.Helper()
	tpl, ok := catalog.ByID(id)
	if !ok {
		t.Fatalf("catalog.ByID(%q) returned no template", id)
	}
	return tpl
}

func TestComputeTotals(t *testing.T) {
	retail := mustTemplate(t, enum.TemplateRetail)
	medical := mustTemplate(t, enum.TemplateMedical)
	realestate := mustTemplate(t, enum.TemplateRealEstate)

	tests := []struct {
		name         string
		receipt      entity.Receipt
		wantSubtotal string
		wantTax      string
		wantGrand    string
		wantBalance  string
		wantShowTax  bool
	}{
		{
			name: "taxed items with fractional tax",
			receipt: entity.Receipt{
				Template: retail,
				Items: []entity.ReceiptItem{
					{Name: "Coffee", Price: 3.50, Quantity: 2},
					{Name: "Muffin", Price: 2.75, Quantity: 1},
				},
			},
			wantSubtotal: "9.75",
			wantTax:      "0.804375",
			wantGrand:    "10.554375",
			wantBalance:  "0",
			wantShowTax:  true,
		},
		{
			name: "tax suppressed by template",
			receipt: entity.Receipt{
				Template: medical,
				Items: []entity.ReceiptItem{
					{Name: "Consultation", Price: 120, Quantity: 1},
				},
			},
			wantSubtotal: "120",
			wantTax:      "0",
			wantGrand:    "120",
			wantBalance:  "0",
		},
		{
			name: "balance due on supporting template",
			receipt: entity.Receipt{
				Template:       realestate,
				BalancePayment: 25000,
				Items: []entity.ReceiptItem{
					{Name: "Deposit", Price: 5000, Quantity: 1},
				},
			},
			wantSubtotal: "5000",
			wantTax:      "0",
			wantGrand:    "5000",
			wantBalance:  "25000",
		},
		{
			name: "balance ignored when template lacks the field",
			receipt: entity.Receipt{
				Template:       retail,
				BalancePayment: 99,
			},
			wantSubtotal: "0",
			wantTax:      "0",
			wantGrand:    "0",
			wantBalance:  "0",
			wantShowTax:  true,
		},
		{
			name:         "empty receipt",
			receipt:      entity.Receipt{Template: retail},
			wantSubtotal: "0",
			wantTax:      "0",
			wantGrand:    "0",
			wantBalance:  "0",
			wantShowTax:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(&tt.receipt)

			check := func(field string, got decimal.Decimal, want string) {
				if !got.Equal(decimal.RequireFromString(want)) {
					t.Errorf("%s = %s, want %s", field, got, want)
				}
			}
			check("Subtotal", got.Subtotal, tt.wantSubtotal)
			check("Tax", got.Tax, tt.wantTax)
			check("GrandTotal", got.GrandTotal, tt.wantGrand)
			check("BalanceDue", got.BalanceDue, tt.wantBalance)
			if got.ShowTax != tt.wantShowTax {
				t.Errorf("ShowTax = %v, want %v", got.ShowTax, tt.wantShowTax)
			}
		})
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	retail := mustTemplate(t, enum.TemplateRetail)
	a := entity.Receipt{
		Template: retail,
		Items: []entity.ReceiptItem{
			{Name: "A", Price: 1.10, Quantity: 3},
			{Name: "B", Price: 0.35, Quantity: 7},
			{Name: "C", Price: 12.99, Quantity: 1},
		},
	}
	b := entity.Receipt{
		Template: retail,
		Items:    []entity.ReceiptItem{a.Items[2], a.Items[0], a.Items[1]},
	}

	ta, tb := ComputeTotals(&a), ComputeTotals(&b)
	if !ta.GrandTotal.Equal(tb.GrandTotal) {
		t.Errorf("grand total depends on item order: %s vs %s", ta.GrandTotal, tb.GrandTotal)
	}
}
