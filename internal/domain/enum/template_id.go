package enum

// TemplateID is the closed set of catalog template identifiers. Every
// capability check ("does this template support X") goes through the flag
// record carried by the preset, so adding a variant here forces a catalog
// entry too.
type TemplateID string

const (
	TemplateRetail     TemplateID = "retail"
	TemplateRestaurant TemplateID = "restaurant"
	TemplateHotel      TemplateID = "hotel"
	TemplateMedical    TemplateID = "medical"
	TemplateInvoice    TemplateID = "invoice"
	TemplateRealEstate TemplateID = "realestate"
)

// Valid reports whether id names a catalog template.
func (id TemplateID) Valid() bool {
	switch id {
	case TemplateRetail, TemplateRestaurant, TemplateHotel,
		TemplateMedical, TemplateInvoice, TemplateRealEstate:
		return true
	}
	return false
}
