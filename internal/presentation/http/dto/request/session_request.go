package request

// UpdateReceiptRequest carries partial receipt field updates. Absent fields
// stay untouched.
type UpdateReceiptRequest struct {
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

// UpdatePaymentRequest carries partial payment info updates.
type UpdatePaymentRequest struct {
	Method       *string `json:"method"`
	CardLastFour *string `json:"card_last_four"`
}
