package kernel_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestNewMoney(t *testing.T) {
	testCases := []struct {
		name         string
		amount, code string
		wantAmount   string
		wantCurrency string
	}{
		{"defaults currency to INR", "1499.00", "", "1499.00", "INR"},
		{"canonicalises known codes", "20.00", "usd", "20.00", "USD"},
		{"keeps unknown codes upper-cased", "5", "xyzq", "5", "XYZQ"},
		{"blank amount becomes zero", " ", "INR", "0", "INR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := kernel.NewMoney(tc.amount, tc.code)

			assert.Equal(t, tc.wantAmount, m.Amount())
			assert.Equal(t, tc.wantCurrency, m.Currency())
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "INR 1499.00", kernel.NewMoney("1499.00", "").String())
}
