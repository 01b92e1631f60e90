package guard_test

import (
	"errors"
	"testing"

	"lockers/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCodeIsNotConstructed = errors.New("code must be created via its constructor")

type code struct {
	value string
	guard guard.ConstructorGuard
}

func newCode(value string) code {
	return code{value: value, guard: guard.NewConstructorGuard()}
}

func (c code) Validate() error {
	return c.guard.Validate(errCodeIsNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed value passes", func(t *testing.T) {
		require.NoError(t, newCode("482913").Validate())
	})

	t.Run("struct literal fails with the given error", func(t *testing.T) {
		err := code{value: "482913"}.Validate()

		assert.Equal(t, errCodeIsNotConstructed, err)
	})

	t.Run("zero value fails with the default error when none is given", func(t *testing.T) {
		var g guard.ConstructorGuard

		require.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})

	t.Run("copies keep the constructed flag", func(t *testing.T) {
		original := newCode("482913")
		copied := original

		require.NoError(t, copied.Validate())
	})
}
