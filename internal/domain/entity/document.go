package entity

// Document is the displayable projection of a Receipt plus its computed
// totals. It is built by the preview service and consumed unchanged by the
// JSON preview endpoint, the PNG/PDF renderers and the ESC/POS formatter.
// Every label and amount is already resolved/formatted for the session
// locale, so identical inputs always produce an identical document.
type Document struct {
	Header   DocumentHeader  `json:"header"`
	Items    []DocumentItem  `json:"items"`
	Totals   DocumentTotals  `json:"totals"`
	Payment  DocumentPayment `json:"payment"`
	Footer   DocumentFooter  `json:"footer"`
	Animate  bool            `json:"animate"` // item-entrance hint, re-armed by generate
	Locale   string          `json:"locale"`
	Texture  string          `json:"texture"` // background art asset path
}

// DocumentHeader is the centered block at the top of the receipt.
type DocumentHeader struct {
	StoreName     string          `json:"store_name"`
	DateTime      string          `json:"date_time"`
	ReceiptNumber string          `json:"receipt_number"`
	Extras        []DocumentField `json:"extras,omitempty"` // gated optional identifiers, in template order
}

// DocumentField is one resolved label/value pair.
type DocumentField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DocumentItem is one rendered line item.
type DocumentItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnitLine    string `json:"unit_line"` // e.g. "$3.50 × 2"
	LineTotal   string `json:"line_total"`
	Quantity    int    `json:"quantity"`
}

// DocumentTotals is the totals block.
type DocumentTotals struct {
	SubtotalLabel string `json:"subtotal_label"` // "Subtotal" or the purchase-amount label
	Subtotal      string `json:"subtotal"`
	TaxLabel      string `json:"tax_label,omitempty"`
	Tax           string `json:"tax,omitempty"`
	GrandLabel    string `json:"grand_label"`
	GrandTotal    string `json:"grand_total"`
	BalanceLabel  string `json:"balance_label,omitempty"`
	BalanceDue    string `json:"balance_due,omitempty"`
}

// DocumentPayment is the payment block.
type DocumentPayment struct {
	Method        string `json:"method"`
	CardSuffix    string `json:"card_suffix,omitempty"` // already masked, "**** 4242"
	TransactionID string `json:"transaction_id"`
}

// DocumentFooter carries the scannable code payload and the footer line.
type DocumentFooter struct {
	BarcodeValue string `json:"barcode_value"`
	Text         string `json:"text"`
}
