package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/receiptforge/receiptforge-api/internal/domain/catalog"
	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
	"github.com/receiptforge/receiptforge-api/internal/domain/repository"
	"github.com/receiptforge/receiptforge-api/pkg/apperror"
	"github.com/receiptforge/receiptforge-api/pkg/i18n"
	"github.com/receiptforge/receiptforge-api/pkg/identifier"
)

// ReceiptService owns the session lifecycle, the receipt field setters,
// template selection and the line-item editor.
type ReceiptService struct {
	sessions repository.SessionRepository
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(sessions repository.SessionRepository) *ReceiptService {
	return &ReceiptService{sessions: sessions}
}

// newReceipt builds the default receipt from a catalog preset.
func newReceipt(tpl entity.ReceiptTemplate, now time.Time) entity.Receipt {
	return entity.Receipt{
		StoreName:     tpl.DefaultStoreKey,
		Date:          now.Format("2006-01-02"),
		Time:          now.Format("15:04:05"),
		Items:         []entity.ReceiptItem{},
		Template:      tpl,
		ReceiptNumber: identifier.GenerateReceiptNumber(),
		FooterText:    "thankYou",
		PaymentInfo: entity.PaymentInfo{
			Method:        enum.PaymentMethodCreditCard,
			CardLastFour:  "4242",
			TransactionID: identifier.GenerateTransactionID(),
		},
	}
}

// CreateSession starts a new editing session on the default template.
func (s *ReceiptService) CreateSession(ctx context.Context, locale string) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		ID:        uuid.New(),
		Locale:    locale,
		Receipt:   newReceipt(catalog.Default(), now),
		EditIndex: entity.NoEdit,
		State:     enum.GenerateStateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the current session state.
func (s *ReceiptService) GetSession(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	return s.sessions.Get(ctx, id)
}

// DeleteSession discards a session.
func (s *ReceiptService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.sessions.Delete(ctx, id)
}

// Reset replaces the receipt wholesale with a fresh default and clears
// edit and generate state. The session (and its locale) survive.
func (s *ReceiptService) Reset(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	return s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		sess.Receipt = newReceipt(catalog.Default(), time.Now())
		sess.EditIndex = entity.NoEdit
		sess.EditBuffer = entity.ReceiptItem{}
		sess.State = enum.GenerateStateIdle
		sess.Generated = false
		sess.Animate = false
		return nil
	})
}

// UpdateReceiptInput carries partial receipt field updates. Nil fields are
// left untouched.
type UpdateReceiptInput struct {
	StoreName       *string  `json:"store_name"`
	Date            *string  `json:"date"`
	Time            *string  `json:"time"`
	RoomNumber      *string  `json:"room_number"`
	PatientID       *string  `json:"patient_id"`
	ServiceDate     *string  `json:"service_date"`
	InvoiceNumber   *string  `json:"invoice_number"`
	PropertyAddress *string  `json:"property_address"`
	PurchaseAmount  *float64 `json:"purchase_amount"`
	BalancePayment  *float64 `json:"balance_payment"`
	FooterText      *string  `json:"footer_text"`
}

// UpdateReceipt applies the non-nil fields of input to the receipt.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, id uuid.UUID, input *UpdateReceiptInput) (*entity.Session, error) {
	return s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		r := &sess.Receipt
		if input.StoreName != nil {
			r.StoreName = *input.StoreName
		}
		if input.Date != nil {
			r.Date = *input.Date
		}
		if input.Time != nil {
			r.Time = *input.Time
		}
		if input.RoomNumber != nil {
			r.RoomNumber = *input.RoomNumber
		}
		if input.PatientID != nil {
			r.PatientID = *input.PatientID
		}
		if input.ServiceDate != nil {
			r.ServiceDate = *input.ServiceDate
		}
		if input.InvoiceNumber != nil {
			r.InvoiceNumber = *input.InvoiceNumber
		}
		if input.PropertyAddress != nil {
			r.PropertyAddress = *input.PropertyAddress
		}
		if input.PurchaseAmount != nil && *input.PurchaseAmount >= 0 {
			r.PurchaseAmount = *input.PurchaseAmount
		}
		if input.BalancePayment != nil && *input.BalancePayment >= 0 {
			r.BalancePayment = *input.BalancePayment
		}
		if input.FooterText != nil {
			r.FooterText = *input.FooterText
		}
		return nil
	})
}

// SelectTemplate clones the preset into the receipt. Store name falls back
// to the new preset's default and the footer resets to the thank-you text;
// items and payment info are preserved unchanged.
func (s *ReceiptService) SelectTemplate(ctx context.Context, id uuid.UUID, templateID enum.TemplateID) (*entity.Session, error) {
	tpl, ok := catalog.ByID(templateID)
	if !ok {
		return nil, apperror.ErrTemplateUnknown
	}
	return s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		sess.Receipt.Template = tpl
		sess.Receipt.StoreName = tpl.DefaultStoreKey
		sess.Receipt.FooterText = "thankYou"
		return nil
	})
}

// UpdateTemplateFlags toggles ShowTax/ShowTip on the session's template
// copy. The catalog preset is never touched.
func (s *ReceiptService) UpdateTemplateFlags(ctx context.Context, id uuid.UUID, showTax, showTip *bool) (*entity.Session, error) {
	return s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		if showTax != nil {
			sess.Receipt.Template.ShowTax = *showTax
		}
		if showTip != nil {
			sess.Receipt.Template.ShowTip = *showTip
		}
		return nil
	})
}

// UpdatePaymentInput carries partial payment info updates.
type UpdatePaymentInput struct {
	Method       *enum.PaymentMethod `json:"method"`
	CardLastFour *string             `json:"card_last_four"`
}

// UpdatePayment applies payment changes. A card suffix must be exactly
// four digits; it is cleared when the method carries no card.
func (s *ReceiptService) UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdatePaymentInput) (*entity.Session, error) {
	return s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		p := &sess.Receipt.PaymentInfo
		if input.Method != nil {
			p.Method = *input.Method
		}
		if input.CardLastFour != nil {
			if !isFourDigits(*input.CardLastFour) {
				return apperror.NewValidationError([]apperror.FieldError{
					{Field: "card_last_four", Message: "must be exactly 4 digits"},
				})
			}
			p.CardLastFour = *input.CardLastFour
		}
		if !p.Method.IsCard() {
			p.CardLastFour = ""
		}
		return nil
	})
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ItemInput is the raw, form-shaped item submission. Price and quantity
// arrive as strings and are parsed per the template's rules.
type ItemInput struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
}

// parseItem validates and converts a submission. ok is false when the
// submission must be refused (empty name, or missing/bad price on a
// template that requires one).
func parseItem(input *ItemInput, tpl *entity.ReceiptTemplate) (entity.ReceiptItem, bool) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entity.ReceiptItem{}, false
	}

	price := 0.0
	if raw := strings.TrimSpace(input.Price); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			if !tpl.PriceOptional {
				return entity.ReceiptItem{}, false
			}
		} else {
			price = parsed
		}
	} else if !tpl.PriceOptional {
		return entity.ReceiptItem{}, false
	}

	quantity := 1
	if raw := strings.TrimSpace(input.Quantity); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 1 {
			quantity = parsed
		}
	}

	return entity.ReceiptItem{
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Description: strings.TrimSpace(input.Description),
	}, true
}

// AddItem appends a line item. An invalid submission is refused silently:
// added is false and the receipt is unchanged.
func (s *ReceiptService) AddItem(ctx context.Context, id uuid.UUID, input *ItemInput) (*entity.Session, bool, error) {
	added := false
	session, err := s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		item, ok := parseItem(input, &sess.Receipt.Template)
		if !ok {
			return nil
		}
		sess.Receipt.Items = append(sess.Receipt.Items, item)
		added = true
		return nil
	})
	return session, added, err
}

// StartEdit captures the item at index into the edit buffer. At most one
// index is editable at a time; starting a new edit replaces the buffer.
func (s *ReceiptService) StartEdit(ctx context.Context, id uuid.UUID, index int) (*entity.Session, error) {
	return s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		if index < 0 || index >= len(sess.Receipt.Items) {
			return apperror.ErrItemIndex
		}
		sess.EditIndex = index
		sess.EditBuffer = sess.Receipt.Items[index]
		return nil
	})
}

// CommitEdit replaces the item at index in place, preserving its position,
// and clears edit mode. An invalid submission is refused silently with the
// edit buffer left intact.
func (s *ReceiptService) CommitEdit(ctx context.Context, id uuid.UUID, index int, input *ItemInput) (*entity.Session, bool, error) {
	committed := false
	session, err := s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		if index < 0 || index >= len(sess.Receipt.Items) {
			return apperror.ErrItemIndex
		}
		item, ok := parseItem(input, &sess.Receipt.Template)
		if !ok {
			return nil
		}
		sess.Receipt.Items[index] = item
		sess.EditIndex = entity.NoEdit
		sess.EditBuffer = entity.ReceiptItem{}
		committed = true
		return nil
	})
	return session, committed, err
}

// RemoveItem deletes the item at index, preserving the order of the rest.
// Removing the item being edited clears edit mode; removing an earlier
// item shifts the edit index along with its item.
func (s *ReceiptService) RemoveItem(ctx context.Context, id uuid.UUID, index int) (*entity.Session, error) {
	return s.sessions.Update(ctx, id, func(sess *entity.Session) error {
		items := sess.Receipt.Items
		if index < 0 || index >= len(items) {
			return apperror.ErrItemIndex
		}
		sess.Receipt.Items = append(items[:index], items[index+1:]...)

		switch {
		case sess.EditIndex == index:
			sess.EditIndex = entity.NoEdit
			sess.EditBuffer = entity.ReceiptItem{}
		case sess.EditIndex > index:
			sess.EditIndex--
		}
		return nil
	})
}

// Totals recomputes the derived figures for a session.
func (s *ReceiptService) Totals(ctx context.Context, id uuid.UUID) (Totals, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Totals{}, err
	}
	return ComputeTotals(&session.Receipt), nil
}

// TemplateInfo pairs a preset with its labels resolved for a locale.
type TemplateInfo struct {
	Template         entity.ReceiptTemplate `json:"template"`
	Name             string                 `json:"name"`
	DefaultStoreName string                 `json:"default_store_name"`
}

// ListTemplates returns the catalog with names resolved for the locale.
func ListTemplates(locale string) []TemplateInfo {
	presets := catalog.All()
	out := make([]TemplateInfo, 0, len(presets))
	for _, t := range presets {
		out = append(out, TemplateInfo{
			Template:         t,
			Name:             i18n.Lookup(t.NameKey, locale),
			DefaultStoreName: i18n.Lookup(t.DefaultStoreKey, locale),
		})
	}
	return out
}
