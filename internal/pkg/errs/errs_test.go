package errs_test

import (
	"errors"
	"testing"

	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "1001")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "1001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 1001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is not on the board")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "1001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 1001 (cause: order is not on the board)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("ID is rendered on one line", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "10\n01")
		assert.Equal(t, "object not found: 10 01", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("shipped is not a status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: shipped is not a status)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("limit", 900, 1, 500)

		assert.Equal(t, 900, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 500, err.Max)
		assert.Equal(t, "value is invalid: 900 is limit, min value is 1, max value is 500", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("query rejected")
		err := errs.NewValueIsOutOfRangeErrorWithCause("limit", -5, 1, 500, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is limit, min value is 1, max value is 500 (cause: query rejected)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("orderId")
	assert.Equal(t, "value is required: orderId", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("orderId", errors.New("blank"))
	assert.Equal(t, "value is required: orderId (cause: blank)", withCause.Error())
	assert.Equal(t, errs.ErrValueIsRequired, withCause.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("limit", 0, 1, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("orderId"), errs.ErrValueIsRequired)

	var invalid *errs.ValueIsInvalidError
	wrapped := errors.Join(errors.New("other"), errs.NewValueIsInvalidError("status"))
	require.ErrorAs(t, wrapped, &invalid)
	assert.Equal(t, "status", invalid.ParamName)
}
