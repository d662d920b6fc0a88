package service

import (
	"reflect"
	"testing"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
)

func sampleSession(t *testing.T, tplID enum.TemplateID, locale string) *entity.Session {
	t.Helper()
	return &entity.Session{
		Locale: locale,
		Receipt: entity.Receipt{
			StoreName:     "Corner Deli",
			Date:          "2026-08-28",
			Time:          "14:30:00",
			ReceiptNumber: "123456789",
			FooterText:    "thankYou",
			Template:      mustTemplate(t, tplID),
			Items: []entity.ReceiptItem{
				{Name: "Coffee", Price: 3.50, Quantity: 2, Description: "oat milk"},
			},
			PaymentInfo: entity.PaymentInfo{
				Method:        enum.PaymentMethodCreditCard,
				CardLastFour:  "4242",
				TransactionID: "987654321",
			},
		},
	}
}

func TestBuildDocumentDeterministic(t *testing.T) {
	session := sampleSession(t, enum.TemplateRetail, "en")
	a := BuildDocument(session)
	b := BuildDocument(session)
	if !reflect.DeepEqual(a, b) {
		t.Error("BuildDocument is not deterministic for identical input")
	}
}

func TestBuildDocumentHeader(t *testing.T) {
	session := sampleSession(t, enum.TemplateRetail, "en")
	doc := BuildDocument(session)

	if doc.Header.StoreName != "Corner Deli" {
		t.Errorf("store name = %q, want literal passthrough", doc.Header.StoreName)
	}
	if doc.Header.DateTime != "2026-08-28 14:30:00" {
		t.Errorf("date time = %q", doc.Header.DateTime)
	}
	if doc.Header.ReceiptNumber != "Receipt # 123456789" {
		t.Errorf("receipt number line = %q", doc.Header.ReceiptNumber)
	}
	if doc.Texture != session.Receipt.Template.Background {
		t.Errorf("texture = %q, want template background", doc.Texture)
	}
}

func TestBuildDocumentStoreKeyResolved(t *testing.T) {
	session := sampleSession(t, enum.TemplateRetail, "en")
	session.Receipt.StoreName = "storeRetail"
	doc := BuildDocument(session)
	if doc.Header.StoreName != "Corner Market" {
		t.Errorf("store name = %q, want resolved default", doc.Header.StoreName)
	}

	session.Locale = "zh"
	doc = BuildDocument(session)
	if doc.Header.StoreName != "街角超市" {
		t.Errorf("zh store name = %q", doc.Header.StoreName)
	}
}

func TestBuildDocumentExtrasGating(t *testing.T) {
	tests := []struct {
		name   string
		tplID  enum.TemplateID
		mutate func(*entity.Receipt)
		want   []string // extra labels, in order
	}{
		{
			name:   "retail has no extras",
			tplID:  enum.TemplateRetail,
			mutate: func(r *entity.Receipt) { r.RoomNumber = "12" },
			want:   nil,
		},
		{
			name:  "hotel shows room and service date",
			tplID: enum.TemplateHotel,
			mutate: func(r *entity.Receipt) {
				r.RoomNumber = "412"
				r.ServiceDate = "2026-08-27"
			},
			want: []string{"Room #", "Service Date"},
		},
		{
			name:   "enabled field with empty value stays hidden",
			tplID:  enum.TemplateHotel,
			mutate: func(r *entity.Receipt) { r.RoomNumber = "412" },
			want:   []string{"Room #"},
		},
		{
			name:  "real estate shows property address",
			tplID: enum.TemplateRealEstate,
			mutate: func(r *entity.Receipt) {
				r.PropertyAddress = "12 Elm St"
			},
			want: []string{"Property Address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := sampleSession(t, tt.tplID, "en")
			tt.mutate(&session.Receipt)
			doc := BuildDocument(session)

			var labels []string
			for _, f := range doc.Header.Extras {
				labels = append(labels, f.Label)
			}
			if !reflect.DeepEqual(labels, tt.want) {
				t.Errorf("extras = %v, want %v", labels, tt.want)
			}
		})
	}
}

func TestBuildDocumentItems(t *testing.T) {
	session := sampleSession(t, enum.TemplateRetail, "en")
	doc := BuildDocument(session)

	if len(doc.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(doc.Items))
	}
	item := doc.Items[0]
	if item.Name != "Coffee" || item.Quantity != 2 {
		t.Errorf("item = %+v", item)
	}
	if item.Description != "oat milk" {
		t.Errorf("description = %q, want oat milk", item.Description)
	}
	if item.UnitLine == "" || item.LineTotal == "" {
		t.Error("unit line and line total must be formatted")
	}
}

func TestBuildDocumentTotalsLabels(t *testing.T) {
	session := sampleSession(t, enum.TemplateRetail, "en")
	doc := BuildDocument(session)

	if doc.Totals.SubtotalLabel != "Subtotal" {
		t.Errorf("subtotal label = %q", doc.Totals.SubtotalLabel)
	}
	if doc.Totals.TaxLabel != "Tax (8.25%)" {
		t.Errorf("tax label = %q, want Tax (8.25%%)", doc.Totals.TaxLabel)
	}
	if doc.Totals.GrandLabel != "Total" {
		t.Errorf("grand label = %q", doc.Totals.GrandLabel)
	}
	if doc.Totals.BalanceLabel != "" {
		t.Errorf("balance label = %q, want empty", doc.Totals.BalanceLabel)
	}
}

func TestBuildDocumentPurchaseAmountOverride(t *testing.T) {
	session := sampleSession(t, enum.TemplateRealEstate, "en")
	session.Receipt.PurchaseAmount = 350000
	doc := BuildDocument(session)

	if doc.Totals.SubtotalLabel != "Purchase Amount" {
		t.Errorf("subtotal label = %q, want Purchase Amount", doc.Totals.SubtotalLabel)
	}
	if doc.Totals.Subtotal != doc.Totals.GrandTotal {
		t.Errorf("purchase amount should drive both figures: %q vs %q", doc.Totals.Subtotal, doc.Totals.GrandTotal)
	}
	if doc.Totals.TaxLabel != "" {
		t.Errorf("tax shown on a tax-free template: %q", doc.Totals.TaxLabel)
	}
}

func TestBuildDocumentPayment(t *testing.T) {
	session := sampleSession(t, enum.TemplateRetail, "en")
	doc := BuildDocument(session)

	if doc.Payment.Method != "Credit Card" {
		t.Errorf("method = %q", doc.Payment.Method)
	}
	if doc.Payment.CardSuffix != "**** 4242" {
		t.Errorf("card suffix = %q, want **** 4242", doc.Payment.CardSuffix)
	}

	session.Receipt.PaymentInfo.Method = enum.PaymentMethodCash
	session.Receipt.PaymentInfo.CardLastFour = ""
	doc = BuildDocument(session)
	if doc.Payment.CardSuffix != "" {
		t.Errorf("cash payment carries a card suffix: %q", doc.Payment.CardSuffix)
	}
}

func TestBuildDocumentFooter(t *testing.T) {
	session := sampleSession(t, enum.TemplateRetail, "en")
	doc := BuildDocument(session)

	if doc.Footer.BarcodeValue != "123456789" {
		t.Errorf("barcode = %q, want the receipt number", doc.Footer.BarcodeValue)
	}
	if doc.Footer.Text != "Thank you for your business!" {
		t.Errorf("footer = %q", doc.Footer.Text)
	}

	// Custom footer text passes through Lookup unchanged.
	session.Receipt.FooterText = "No refunds after 30 days"
	doc = BuildDocument(session)
	if doc.Footer.Text != "No refunds after 30 days" {
		t.Errorf("custom footer = %q", doc.Footer.Text)
	}

	// Empty footer falls back to the thank-you line.
	session.Receipt.FooterText = ""
	doc = BuildDocument(session)
	if doc.Footer.Text != "Thank you for your business!" {
		t.Errorf("empty footer fallback = %q", doc.Footer.Text)
	}
}
