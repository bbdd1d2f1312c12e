package order_test

import (
	"fmt"
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should reserve zero for Unrecognized", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unrecognized))
	})

	t.Run("should list the seven statuses in display order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.New, order.Confirmed, order.Cancelled, order.NotPicked,
			order.Dispatched, order.Delivered, order.RTO,
		}, order.AllStatuses())
	})
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected order.Status
	}{
		{"new", order.New},
		{"confirmed", order.Confirmed},
		{"cancelled", order.Cancelled},
		{"not_picked", order.NotPicked},
		{"dispatched", order.Dispatched},
		{"delivered", order.Delivered},
		{"rto", order.RTO},
		{" rto ", order.RTO},
		{"shipped", order.Unrecognized},
		{"NEW", order.Unrecognized},
		{"", order.Unrecognized},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should parse %q", tc.raw), func(t *testing.T) {
			assert.Equal(t, tc.expected, order.ParseStatus(tc.raw))
		})
	}
}

func TestStatus_StringRoundTrip(t *testing.T) {
	for _, s := range order.AllStatuses() {
		assert.Equal(t, s, order.ParseStatus(s.String()))
	}
	assert.Equal(t, "unknown", order.Unrecognized.String())
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Not Picked", order.NotPicked.Label())
	assert.Equal(t, "RTO", order.RTO.Label())
	assert.Equal(t, "Unknown", order.Unrecognized.Label())
	assert.Equal(t, "Unknown", order.Status(42).Label())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept the closed set", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject Unrecognized and out of range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unrecognized, order.Status(-1), order.Status(8)} {
			err := s.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(s)))
		}
	})
}

func TestStatus_ActiveAndTerminal(t *testing.T) {
	active := map[order.Status]bool{order.New: true, order.Confirmed: true, order.NotPicked: true}
	terminal := map[order.Status]bool{order.Delivered: true, order.RTO: true}

	for _, s := range order.AllStatuses() {
		assert.Equal(t, active[s], s.IsActive(), s.String())
		assert.Equal(t, terminal[s], s.IsTerminal(), s.String())
	}
	assert.True(t, order.Unrecognized.IsTerminal())
	assert.False(t, order.Unrecognized.IsActive())
}

func TestStatus_AllowedTransitions(t *testing.T) {
	table := map[order.Status][]order.Status{
		order.New:        {order.Confirmed, order.Cancelled},
		order.Confirmed:  {order.Dispatched, order.NotPicked},
		order.Cancelled:  {order.Confirmed},
		order.NotPicked:  {order.Confirmed, order.Cancelled},
		order.Dispatched: {order.Delivered, order.RTO},
		order.Delivered:  {},
		order.RTO:        {},
	}

	for from, targets := range table {
		t.Run(from.String(), func(t *testing.T) {
			assert.Equal(t, targets, from.AllowedTransitions())

			for _, to := range order.AllStatuses() {
				assert.Equal(t, contains(targets, to), from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		})
	}

	t.Run("Unrecognized offers nothing", func(t *testing.T) {
		assert.Empty(t, order.Unrecognized.AllowedTransitions())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		targets := order.New.AllowedTransitions()
		targets[0] = order.RTO
		assert.Equal(t, order.Confirmed, order.New.AllowedTransitions()[0])
	})
}

func TestStatus_ValidateTransition(t *testing.T) {
	t.Run("should accept a table transition", func(t *testing.T) {
		require.NoError(t, order.Dispatched.ValidateTransition(order.RTO))
	})

	t.Run("should reject a transition outside the table", func(t *testing.T) {
		err := order.New.ValidateTransition(order.Delivered)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "new cannot move to delivered")
	})

	t.Run("should reject an invalid target", func(t *testing.T) {
		require.Error(t, order.New.ValidateTransition(order.Unrecognized))
	})
}

func contains(list []order.Status, s order.Status) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
