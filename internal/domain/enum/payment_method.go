package enum

import "encoding/json"

// PaymentMethod represents how a receipt was paid
type PaymentMethod int

const (
	PaymentMethodCreditCard   PaymentMethod = 0
	PaymentMethodDebitCard    PaymentMethod = 1
	PaymentMethodCash         PaymentMethod = 2
	PaymentMethodBankTransfer PaymentMethod = 3
)

func (m PaymentMethod) String() string {
	names := [...]string{"Credit Card", "Debit Card", "Cash", "Bank Transfer"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Credit Card"
	}
	return names[m]
}

// IsCard reports whether the method carries a card suffix.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	if parsed, ok := ParsePaymentMethod(str); ok {
		*m = parsed
	}
	return nil
}

// ParsePaymentMethod maps a display name back to its method.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch s {
	case "Credit Card":
		return PaymentMethodCreditCard, true
	case "Debit Card":
		return PaymentMethodDebitCard, true
	case "Cash":
		return PaymentMethodCash, true
	case "Bank Transfer":
		return PaymentMethodBankTransfer, true
	}
	return PaymentMethodCreditCard, false
}
