// Package render turns a preview document into receipt artifacts: a PNG
// raster (the downloadable image), a PDF, and the footer barcode glyph.
package render

import (
	"bytes"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
)

// Logical page geometry, in points. The raster is upscaled by the export
// scale factor without changing the layout.
const (
	pageWidth   = 420.0
	marginX     = 36.0
	lineNormal  = 16.0
	lineSmall   = 13.0
	barcodeW    = 180.0
	barcodeH    = 48.0
	titleSize   = 21.0
	normalSize  = 12.0
	smallSize   = 10.0
	grandSize   = 15.0
)

// Renderer rasterizes preview documents. It is safe for concurrent use:
// the font source is read-only after construction and every render works
// on its own drawing context.
type Renderer struct {
	source *text.FontSource
}

// NewRenderer parses the embedded render font.
func NewRenderer() (*Renderer, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse font: %w", err)
	}
	return &Renderer{source: source}, nil
}

// RenderPNG draws the document at the given upscale factor and returns the
// encoded PNG bytes.
func (r *Renderer) RenderPNG(doc *entity.Document, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	height := r.measure(doc)

	ctx := gg.NewContext(int(pageWidth*scale), int(height*scale))
	ctx.Scale(scale, scale)

	// Paper
	ctx.SetRGB(0.99, 0.98, 0.95)
	ctx.DrawRectangle(0, 0, pageWidth, height)
	ctx.Fill()
	ctx.SetRGB(0.1, 0.1, 0.1)

	p := &painter{ctx: ctx, r: r, y: 44}
	p.header(doc)
	p.divider()
	p.items(doc)
	p.divider()
	p.totals(doc)
	p.payment(doc)
	p.footer(doc)

	var buf bytes.Buffer
	if err := ctx.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("render: failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// measure walks the document once to derive the page height.
func (r *Renderer) measure(doc *entity.Document) float64 {
	y := 44.0
	y += 30                                           // store name
	y += lineSmall * 2                                // date/time + receipt number
	y += lineSmall * float64(len(doc.Header.Extras))  // gated identifiers
	y += 24                                           // divider
	for _, it := range doc.Items {
		y += lineNormal
		if it.Description != "" {
			y += lineSmall
		}
		y += lineSmall // unit line
		y += 4
	}
	y += 24 // divider
	y += lineNormal // subtotal
	if doc.Totals.Tax != "" {
		y += lineNormal
	}
	y += 26 // grand total (larger face + rule)
	if doc.Totals.BalanceDue != "" {
		y += lineNormal
	}
	y += lineNormal + lineSmall + 10 // payment block
	y += barcodeH + 16               // barcode
	y += lineNormal + 36             // footer text + bottom margin
	return y
}

// painter carries the running baseline while drawing blocks top to bottom.
type painter struct {
	ctx *gg.Context
	r   *Renderer
	y   float64
}

func (p *painter) face(size float64) {
	p.ctx.SetFont(p.r.source.Face(size))
}

func (p *painter) center(s string, size, advance float64) {
	p.face(size)
	p.ctx.DrawStringAnchored(s, pageWidth/2, p.y, 0.5, 0)
	p.y += advance
}

func (p *painter) keyValue(key, value string, size, advance float64) {
	p.face(size)
	p.ctx.DrawString(key, marginX, p.y)
	w, _ := p.ctx.MeasureString(value)
	p.ctx.DrawString(value, pageWidth-marginX-w, p.y)
	p.y += advance
}

func (p *painter) divider() {
	p.y += 4
	p.ctx.SetDash(4, 4)
	p.ctx.SetLineWidth(1)
	p.ctx.DrawLine(marginX, p.y, pageWidth-marginX, p.y)
	p.ctx.Stroke()
	p.ctx.ClearDash()
	p.y += 20
}

func (p *painter) header(doc *entity.Document) {
	p.center(doc.Header.StoreName, titleSize, 30)
	p.center(doc.Header.DateTime, smallSize, lineSmall)
	p.center(doc.Header.ReceiptNumber, smallSize, lineSmall)
	for _, f := range doc.Header.Extras {
		p.center(f.Label+": "+f.Value, smallSize, lineSmall)
	}
}

func (p *painter) items(doc *entity.Document) {
	for _, it := range doc.Items {
		p.keyValue(it.Name, it.LineTotal, normalSize, lineNormal)
		if it.Description != "" {
			p.face(smallSize)
			p.ctx.SetRGB(0.45, 0.45, 0.45)
			p.ctx.DrawString(it.Description, marginX, p.y)
			p.ctx.SetRGB(0.1, 0.1, 0.1)
			p.y += lineSmall
		}
		p.face(smallSize)
		p.ctx.SetRGB(0.45, 0.45, 0.45)
		w, _ := p.ctx.MeasureString(it.UnitLine)
		p.ctx.DrawString(it.UnitLine, pageWidth-marginX-w, p.y)
		p.ctx.SetRGB(0.1, 0.1, 0.1)
		p.y += lineSmall + 4
	}
}

func (p *painter) totals(doc *entity.Document) {
	p.keyValue(doc.Totals.SubtotalLabel, doc.Totals.Subtotal, normalSize, lineNormal)
	if doc.Totals.Tax != "" {
		p.keyValue(doc.Totals.TaxLabel, doc.Totals.Tax, normalSize, lineNormal)
	}
	p.y += 4
	p.keyValue(doc.Totals.GrandLabel, doc.Totals.GrandTotal, grandSize, 22)
	if doc.Totals.BalanceDue != "" {
		p.keyValue(doc.Totals.BalanceLabel, doc.Totals.BalanceDue, normalSize, lineNormal)
	}
}

func (p *painter) payment(doc *entity.Document) {
	p.y += 6
	method := doc.Payment.Method
	if doc.Payment.CardSuffix != "" {
		method += " (" + doc.Payment.CardSuffix + ")"
	}
	p.face(normalSize)
	p.ctx.DrawString(method, marginX, p.y)
	p.y += lineNormal
	p.face(smallSize)
	p.ctx.SetRGB(0.45, 0.45, 0.45)
	p.ctx.DrawString(doc.Payment.TransactionID, marginX, p.y)
	p.ctx.SetRGB(0.1, 0.1, 0.1)
	p.y += lineSmall + 10
}

func (p *painter) footer(doc *entity.Document) {
	if img, err := BarcodeImage(doc.Footer.BarcodeValue, int(barcodeW), int(barcodeH)); err == nil {
		p.ctx.DrawImage(gg.ImageBufFromImage(img), (pageWidth-barcodeW)/2, p.y)
	}
	p.y += barcodeH + 16
	p.center(doc.Footer.Text, smallSize, lineNormal)
}
