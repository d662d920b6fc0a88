package entity

import "github.com/receiptforge/receiptforge-api/internal/domain/enum"

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

// PaymentInfo holds how the receipt was paid. CardLastFour is only
// meaningful for card methods.
type PaymentInfo struct {
	Method        enum.PaymentMethod `json:"method"`
	CardLastFour  string             `json:"card_last_four,omitempty"`
	TransactionID string             `json:"transaction_id"`
}

// Receipt is the aggregate a session edits. It is a value object held
// in memory only and is never persisted.
//
// Display gating is template-driven: an optional field appears on the
// preview iff the template flags it AND the value is non-empty.
type Receipt struct {
	StoreName       string          `json:"store_name"`
	Date            string          `json:"date"` // 2006-01-02
	Time            string          `json:"time"` // 15:04:05
	Items           []ReceiptItem   `json:"items"`
	Template        ReceiptTemplate `json:"template"`
	ReceiptNumber   string          `json:"receipt_number"`
	RoomNumber      string          `json:"room_number"`
	PatientID       string          `json:"patient_id"`
	ServiceDate     string          `json:"service_date"`
	InvoiceNumber   string          `json:"invoice_number"`
	PropertyAddress string          `json:"property_address"`
	PurchaseAmount  float64         `json:"purchase_amount"`
	BalancePayment  float64         `json:"balance_payment"`
	FooterText      string          `json:"footer_text"`
	PaymentInfo     PaymentInfo     `json:"payment_info"`
}
