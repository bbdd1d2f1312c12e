package guard_test

import (
	"errors"
	"testing"

	"orderdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInValueType(t *testing.T) {
	type tabQuery struct {
		tab   string
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("tabQuery must be created via newTabQuery")
	newTabQuery := func(tab string) tabQuery {
		return tabQuery{tab: tab, guard: guard.NewConstructorGuard()}
	}
	validate := func(q tabQuery) error {
		return q.guard.Validate(errNotConstructed)
	}

	t.Run("built_via_constructor", func(t *testing.T) {
		require.NoError(t, validate(newTabQuery("all")))
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		require.ErrorIs(t, validate(tabQuery{tab: "all"}), errNotConstructed)
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		original := newTabQuery("new")
		copied := original
		require.NoError(t, validate(copied))
	})
}
