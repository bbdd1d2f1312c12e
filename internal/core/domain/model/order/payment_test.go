package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPayment(t *testing.T) {
	testCases := []struct {
		method   string
		expected order.PaymentType
	}{
		{"Cash on Delivery (COD)", order.COD},
		{"COD", order.COD},
		{"cod", order.COD},
		{"prepaid_card", order.Prepaid},
		{"Razorpay", order.Prepaid},
		{"", order.Prepaid},
	}

	for _, tc := range testCases {
		t.Run(tc.method, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.ClassifyPayment(tc.method))
		})
	}
}

func TestPaymentType_String(t *testing.T) {
	assert.Equal(t, "COD", order.COD.String())
	assert.Equal(t, "Prepaid", order.Prepaid.String())
}
