package service

import (
	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/pkg/printer"
)

// FormatDocument converts a rendered document into ESC/POS bytes for a
// 58mm thermal printer.
func FormatDocument(doc *entity.Document) []byte {
	d := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(doc.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		Text(doc.Header.DateTime).
		Text(doc.Header.ReceiptNumber)

	d.SetAlign(printer.AlignLeft)
	if len(doc.Header.Extras) > 0 {
		d.Separator('-')
		for _, f := range doc.Header.Extras {
			d.KeyValue(f.Label+":", f.Value)
		}
	}

	d.Separator('-')

	// Items
	for _, item := range doc.Items {
		d.ItemLine(item.Quantity, item.Name, item.LineTotal)
		if item.Quantity > 1 {
			d.TextF("  @ %s", item.UnitLine)
		}
		if item.Description != "" {
			d.TextF("  %s", item.Description)
		}
	}

	d.Separator('-')

	// Totals
	d.KeyValue(doc.Totals.SubtotalLabel+":", doc.Totals.Subtotal)
	if doc.Totals.Tax != "" {
		d.KeyValue(doc.Totals.TaxLabel+":", doc.Totals.Tax)
	}
	d.SetBold(true).
		KeyValue(doc.Totals.GrandLabel+":", doc.Totals.GrandTotal).
		SetBold(false)
	if doc.Totals.BalanceDue != "" {
		d.KeyValue(doc.Totals.BalanceLabel+":", doc.Totals.BalanceDue)
	}

	d.Separator('-')

	// Payment
	d.KeyValue("Payment:", doc.Payment.Method)
	if doc.Payment.CardSuffix != "" {
		d.KeyValue("Card:", doc.Payment.CardSuffix)
	}
	d.Text(doc.Payment.TransactionID)

	d.Separator('-')

	// Footer
	d.SetAlign(printer.AlignCenter).
		LineFeed().
		Text(doc.Footer.Text).
		LineFeed().
		Barcode(doc.Footer.BarcodeValue).
		SetAlign(printer.AlignLeft)

	d.FeedLines(3).
		PartialCut()

	return d.Bytes()
}
