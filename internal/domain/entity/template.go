package entity

import "github.com/receiptforge/receiptforge-api/internal/domain/enum"

// TemplateFields is the capability record of a template: it controls which
// optional inputs are shown and which optional outputs are computed.
type TemplateFields struct {
	Description     bool `json:"description"`
	RoomNumber      bool `json:"room_number"`
	PatientID       bool `json:"patient_id"`
	ServiceDate     bool `json:"service_date"`
	InvoiceNumber   bool `json:"invoice_number"`
	PropertyAddress bool `json:"property_address"`
	PurchaseAmount  bool `json:"purchase_amount"`
	BalancePayment  bool `json:"balance_payment"`
}

// ReceiptTemplate is an immutable catalog preset. Name, default store name
// and the item/price/quantity labels are i18n keys, not literals; they are
// resolved at render time against the session locale.
//
// Selecting a template copies the preset value into the active Receipt, so
// per-session toggles (e.g. ShowTax) never touch the catalog.
type ReceiptTemplate struct {
	ID               enum.TemplateID `json:"id"`
	NameKey          string          `json:"name_key"`
	DefaultStoreKey  string          `json:"default_store_key"`
	Background       string          `json:"background"` // shell asset path for the paper texture
	ShowTip          bool            `json:"show_tip"`
	ShowTax          bool            `json:"show_tax"`
	PriceOptional    bool            `json:"price_optional"` // items may omit price (defaults to 0)
	ItemLabelKey     string          `json:"item_label_key"`
	PriceLabelKey    string          `json:"price_label_key"`
	QuantityLabelKey string          `json:"quantity_label_key"`
	Fields           TemplateFields  `json:"fields"`
}
