// Package catalog holds the static template presets. The catalog is
// defined at process start, shared read-only and never mutated; sessions
// work on copies handed out by Clone semantics (ReceiptTemplate is a plain
// value, so assignment copies it).
package catalog

import (
	"github.com/receiptforge/receiptforge-api/internal/domain/entity"
	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
)

var templates = []entity.ReceiptTemplate{
	{
		ID:               enum.TemplateRetail,
		NameKey:          "templateRetail",
		DefaultStoreKey:  "storeRetail",
		Background:       "/textures/thermal-classic.png",
		ShowTax:          true,
		ItemLabelKey:     "labelItem",
		PriceLabelKey:    "labelPrice",
		QuantityLabelKey: "labelQuantity",
		Fields:           entity.TemplateFields{Description: true},
	},
	{
		ID:               enum.TemplateRestaurant,
		NameKey:          "templateRestaurant",
		DefaultStoreKey:  "storeRestaurant",
		Background:       "/textures/thermal-soft.png",
		ShowTip:          true,
		ShowTax:          true,
		ItemLabelKey:     "labelDish",
		PriceLabelKey:    "labelPrice",
		QuantityLabelKey: "labelQuantity",
		Fields:           entity.TemplateFields{Description: true},
	},
	{
		ID:               enum.TemplateHotel,
		NameKey:          "templateHotel",
		DefaultStoreKey:  "storeHotel",
		Background:       "/textures/thermal-linen.png",
		ShowTax:          true,
		ItemLabelKey:     "labelCharge",
		PriceLabelKey:    "labelRate",
		QuantityLabelKey: "labelNights",
		Fields: entity.TemplateFields{
			Description: true,
			RoomNumber:  true,
			ServiceDate: true,
		},
	},
	{
		ID:               enum.TemplateMedical,
		NameKey:          "templateMedical",
		DefaultStoreKey:  "storeMedical",
		Background:       "/textures/thermal-classic.png",
		ShowTax:          false,
		ItemLabelKey:     "labelTreatment",
		PriceLabelKey:    "labelFee",
		QuantityLabelKey: "labelQuantity",
		Fields: entity.TemplateFields{
			Description: true,
			PatientID:   true,
			ServiceDate: true,
		},
	},
	{
		ID:               enum.TemplateInvoice,
		NameKey:          "templateInvoice",
		DefaultStoreKey:  "storeInvoice",
		Background:       "/textures/thermal-plain.png",
		ShowTax:          true,
		ItemLabelKey:     "labelService",
		PriceLabelKey:    "labelPrice",
		QuantityLabelKey: "labelQuantity",
		Fields: entity.TemplateFields{
			Description:   true,
			InvoiceNumber: true,
		},
	},
	{
		ID:               enum.TemplateRealEstate,
		NameKey:          "templateRealEstate",
		DefaultStoreKey:  "storeRealEstate",
		Background:       "/textures/thermal-plain.png",
		ShowTax:          false,
		PriceOptional:    true,
		ItemLabelKey:     "labelProperty",
		PriceLabelKey:    "labelAmount",
		QuantityLabelKey: "labelQuantity",
		Fields: entity.TemplateFields{
			Description:     true,
			PropertyAddress: true,
			PurchaseAmount:  true,
			BalancePayment:  true,
		},
	},
}

// All returns every preset in catalog order. The first entry is the
// default template for new sessions.
func All() []entity.ReceiptTemplate {
	out := make([]entity.ReceiptTemplate, len(templates))
	copy(out, templates)
	return out
}

// Default returns the preset new sessions start from.
func Default() entity.ReceiptTemplate {
	return templates[0]
}

// ByID looks up a preset by its identifier.
func ByID(id enum.TemplateID) (entity.ReceiptTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return entity.ReceiptTemplate{}, false
}
