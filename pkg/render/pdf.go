package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
)

// RenderPDF builds a PDF rendition of the preview document.
func RenderPDF(doc *entity.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, doc)
	m.AddRow(4, line.NewCol(12))
	addPDFItems(m, doc)
	m.AddRow(4, line.NewCol(12))
	addPDFTotals(m, doc)
	addPDFPayment(m, doc)
	addPDFFooter(m, doc)

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render: failed to generate pdf: %w", err)
	}
	return pdfDoc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, doc *entity.Document) {
	m.AddRow(12, col.New(12).Add(
		text.New(doc.Header.StoreName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	))
	m.AddRow(6, col.New(12).Add(
		text.New(doc.Header.DateTime, props.Text{Size: 9, Align: align.Center}),
	))
	m.AddRow(6, col.New(12).Add(
		text.New(doc.Header.ReceiptNumber, props.Text{Size: 9, Align: align.Center}),
	))
	for _, f := range doc.Header.Extras {
		m.AddRow(6, col.New(12).Add(
			text.New(f.Label+": "+f.Value, props.Text{Size: 9, Align: align.Center}),
		))
	}
}

func addPDFItems(m core.Maroto, doc *entity.Document) {
	for _, it := range doc.Items {
		m.AddRow(6,
			col.New(8).Add(text.New(it.Name, props.Text{Size: 10})),
			col.New(4).Add(text.New(it.LineTotal, props.Text{Size: 10, Align: align.Right})),
		)
		if it.Description != "" {
			m.AddRow(5, col.New(12).Add(
				text.New(it.Description, props.Text{Size: 8, Color: grayText()}),
			))
		}
		m.AddRow(5, col.New(12).Add(
			text.New(it.UnitLine, props.Text{Size: 8, Align: align.Right, Color: grayText()}),
		))
	}
}

func addPDFTotals(m core.Maroto, doc *entity.Document) {
	addPDFKeyValue(m, doc.Totals.SubtotalLabel, doc.Totals.Subtotal, 10, fontstyle.Normal)
	if doc.Totals.Tax != "" {
		addPDFKeyValue(m, doc.Totals.TaxLabel, doc.Totals.Tax, 10, fontstyle.Normal)
	}
	addPDFKeyValue(m, doc.Totals.GrandLabel, doc.Totals.GrandTotal, 12, fontstyle.Bold)
	if doc.Totals.BalanceDue != "" {
		addPDFKeyValue(m, doc.Totals.BalanceLabel, doc.Totals.BalanceDue, 10, fontstyle.Normal)
	}
}

func addPDFPayment(m core.Maroto, doc *entity.Document) {
	method := doc.Payment.Method
	if doc.Payment.CardSuffix != "" {
		method += " (" + doc.Payment.CardSuffix + ")"
	}
	m.AddRow(6, col.New(12).Add(text.New(method, props.Text{Size: 9})))
	m.AddRow(5, col.New(12).Add(
		text.New(doc.Payment.TransactionID, props.Text{Size: 8, Color: grayText()}),
	))
}

func addPDFFooter(m core.Maroto, doc *entity.Document) {
	m.AddRow(8, col.New(12).Add(
		text.New(doc.Footer.BarcodeValue, props.Text{Size: 9, Align: align.Center}),
	))
	m.AddRow(8, col.New(12).Add(
		text.New(doc.Footer.Text, props.Text{Size: 9, Align: align.Center}),
	))
}

func addPDFKeyValue(m core.Maroto, key, value string, size float64, style fontstyle.Type) {
	m.AddRow(6,
		col.New(8).Add(text.New(key, props.Text{Size: size, Style: style})),
		col.New(4).Add(text.New(value, props.Text{Size: size, Style: style, Align: align.Right})),
	)
}

func grayText() *props.Color {
	return &props.Color{Red: 110, Green: 110, Blue: 110}
}
