package entity

import "fmt"

// PaymentMethod is the closed set of accepted payment methods.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentOnline       PaymentMethod = "online"
)

// ParsePaymentMethod validates a wire value against the closed set.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentBankTransfer, PaymentOnline:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Label returns the German label printed on the invoice document.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Bar"
	case PaymentCard:
		return "Karte"
	case PaymentBankTransfer:
		return "Überweisung"
	case PaymentOnline:
		return "Online-Zahlung"
	}
	return string(m)
}
