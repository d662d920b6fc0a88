package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/internal/domain/repository"
	"github.com/receiptforge/receiptforge-api/pkg/i18n"
	"github.com/receiptforge/receiptforge-api/pkg/money"
)

// PreviewService projects a session's receipt into a displayable document.
type PreviewService struct {
	sessions repository.SessionRepository
}

// NewPreviewService creates a new preview service.
func NewPreviewService(sessions repository.SessionRepository) *PreviewService {
	return &PreviewService{sessions: sessions}
}

// Preview builds the document for a session.
func (s *PreviewService) Preview(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return BuildDocument(session), nil
}

// BuildDocument resolves every label and formats every amount for the
// session locale. It is deterministic: the same session state always yields
// the same document.
func BuildDocument(session *entity.Session) *entity.Document {
	r := &session.Receipt
	locale := session.Locale
	totals := ComputeTotals(r)

	doc := &entity.Document{
		Header: entity.DocumentHeader{
			StoreName:     i18n.Lookup(r.StoreName, locale),
			DateTime:      r.Date + " " + r.Time,
			ReceiptNumber: i18n.Lookup("receiptNumber", locale) + " " + r.ReceiptNumber,
			Extras:        headerExtras(r, locale),
		},
		Items:   documentItems(r, locale),
		Animate: session.Animate,
		Locale:  locale,
		Texture: r.Template.Background,
	}

	doc.Totals = entity.DocumentTotals{
		SubtotalLabel: i18n.Lookup("subtotal", locale),
		Subtotal:      money.Format(totals.Subtotal, locale),
		GrandLabel:    i18n.Lookup("total", locale),
		GrandTotal:    money.Format(totals.GrandTotal, locale),
	}
	if r.Template.Fields.PurchaseAmount {
		doc.Totals.SubtotalLabel = i18n.Lookup("purchaseAmount", locale)
		if r.PurchaseAmount > 0 {
			doc.Totals.Subtotal = money.FormatFloat(r.PurchaseAmount, locale)
			doc.Totals.GrandTotal = doc.Totals.Subtotal
		}
	}
	if totals.ShowTax {
		doc.Totals.TaxLabel = fmt.Sprintf("%s (%s%%)", i18n.Lookup("tax", locale), TaxRate.Mul(hundred).StringFixed(2))
		doc.Totals.Tax = money.Format(totals.Tax, locale)
	}
	if !totals.BalanceDue.IsZero() {
		doc.Totals.BalanceLabel = i18n.Lookup("balanceDue", locale)
		doc.Totals.BalanceDue = money.Format(totals.BalanceDue, locale)
	}

	doc.Payment = entity.DocumentPayment{
		Method:        r.PaymentInfo.Method.String(),
		TransactionID: i18n.Lookup("transactionId", locale) + ": " + r.PaymentInfo.TransactionID,
	}
	if r.PaymentInfo.Method.IsCard() && r.PaymentInfo.CardLastFour != "" {
		doc.Payment.CardSuffix = "**** " + r.PaymentInfo.CardLastFour
	}

	footer := r.FooterText
	if footer == "" {
		footer = "thankYou"
	}
	doc.Footer = entity.DocumentFooter{
		BarcodeValue: r.ReceiptNumber,
		Text:         i18n.Lookup(footer, locale),
	}
	return doc
}

// headerExtras collects the optional identifier lines in a fixed order. A
// field shows only when the template enables it and the value is non-empty.
func headerExtras(r *entity.Receipt, locale string) []entity.DocumentField {
	var extras []entity.DocumentField
	add := func(enabled bool, labelKey, value string) {
		if enabled && value != "" {
			extras = append(extras, entity.DocumentField{
				Label: i18n.Lookup(labelKey, locale),
				Value: value,
			})
		}
	}
	add(r.Template.Fields.RoomNumber, "roomNumber", r.RoomNumber)
	add(r.Template.Fields.PatientID, "patientId", r.PatientID)
	add(r.Template.Fields.ServiceDate, "serviceDate", r.ServiceDate)
	add(r.Template.Fields.InvoiceNumber, "invoiceNumber", r.InvoiceNumber)
	add(r.Template.Fields.PropertyAddress, "propertyAddress", r.PropertyAddress)
	return extras
}

func documentItems(r *entity.Receipt, locale string) []entity.DocumentItem {
	items := make([]entity.DocumentItem, 0, len(r.Items))
	for _, it := range r.Items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		di := entity.DocumentItem{
			Name:      it.Name,
			UnitLine:  fmt.Sprintf("%s × %d", money.FormatFloat(it.Price, locale), it.Quantity),
			LineTotal: money.Format(line, locale),
			Quantity:  it.Quantity,
		}
		if r.Template.Fields.Description {
			di.Description = it.Description
		}
		items = append(items, di)
	}
	return items
}
