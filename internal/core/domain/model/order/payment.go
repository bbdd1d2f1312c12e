package order

import "strings"

// PaymentType is the badge shown next to an order's payment method.
type PaymentType int

const (
	Prepaid PaymentType = iota
	COD
)

// ClassifyPayment returns COD when method mentions "COD" in any letter case,
// Prepaid otherwise (including when method is empty).
func ClassifyPayment(method string) PaymentType {
	if strings.Contains(strings.ToUpper(method), "COD") {
		return COD
	}
	return Prepaid
}

func (p PaymentType) String() string {
	if p == COD {
		return "COD"
	}
	return "Prepaid"
}
