package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
)

func sampleDocument() *entity.Document {
	return &entity.Document{
		Header: entity.DocumentHeader{
			StoreName:     "Corner Market",
			DateTime:      "2026-08-28 14:30:00",
			ReceiptNumber: "Receipt # 123456789",
			Extras: []entity.DocumentField{
				{Label: "Room #", Value: "412"},
			},
		},
		Items: []entity.DocumentItem{
			{Name: "Coffee", Description: "oat milk", UnitLine: "$3.50 × 2", LineTotal: "$7.00", Quantity: 2},
			{Name: "Muffin", UnitLine: "$2.75 × 1", LineTotal: "$2.75", Quantity: 1},
		},
		Totals: entity.DocumentTotals{
			SubtotalLabel: "Subtotal",
			Subtotal:      "$9.75",
			TaxLabel:      "Tax (8.25%)",
			Tax:           "$0.80",
			GrandLabel:    "Total",
			GrandTotal:    "$10.55",
		},
		Payment: entity.DocumentPayment{
			Method:        "Credit Card",
			CardSuffix:    "**** 4242",
			TransactionID: "Transaction ID: 987654321",
		},
		Footer: entity.DocumentFooter{
			BarcodeValue: "123456789",
			Text:         "Thank you for your business!",
		},
		Locale: "en",
	}
}

func TestRenderPNG(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	data, err := r.RenderPNG(sampleDocument(), 1)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != int(pageWidth) {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), int(pageWidth))
	}
}

func TestRenderPNGScale(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	one, err := r.RenderPNG(sampleDocument(), 1)
	if err != nil {
		t.Fatalf("RenderPNG(1): %v", err)
	}
	two, err := r.RenderPNG(sampleDocument(), 2)
	if err != nil {
		t.Fatalf("RenderPNG(2): %v", err)
	}

	a, err := png.Decode(bytes.NewReader(one))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b, err := png.Decode(bytes.NewReader(two))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Bounds().Dx() != 2*a.Bounds().Dx() {
		t.Errorf("scale 2 width = %d, want %d", b.Bounds().Dx(), 2*a.Bounds().Dx())
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(sampleDocument())
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with the PDF header")
	}
}

func TestRenderPDFAllTotalLines(t *testing.T) {
	doc := sampleDocument()
	doc.Totals.BalanceLabel = "Balance Due"
	doc.Totals.BalanceDue = "$5.00"

	data, err := RenderPDF(doc)
	if err != nil {
		t.Fatalf("RenderPDF with balance due: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with the PDF header")
	}

	doc.Totals.Tax = ""
	doc.Totals.BalanceDue = ""
	data, err = RenderPDF(doc)
	if err != nil {
		t.Fatalf("RenderPDF with subtotal and total only: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with the PDF header")
	}
}

func TestBarcodeImage(t *testing.T) {
	img, err := BarcodeImage("123456789", 180, 48)
	if err != nil {
		t.Fatalf("BarcodeImage: %v", err)
	}
	if img.Bounds().Dx() != 180 || img.Bounds().Dy() != 48 {
		t.Errorf("barcode bounds = %v, want 180x48", img.Bounds())
	}
}
