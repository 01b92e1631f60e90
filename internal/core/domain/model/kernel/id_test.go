package kernel_test

import (
	"testing"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromString(t *testing.T) {
	t.Run("should parse positive integer", func(t *testing.T) {
		id, err := kernel.IDFromString("42")

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(42), id)
		assert.Equal(t, "42", id.String())
	})

	t.Run("should reject zero", func(t *testing.T) {
		_, err := kernel.IDFromString("0")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		for _, s := range []string{"", "-1", "abc", "1.5"} {
			_, err := kernel.IDFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestID_Validate(t *testing.T) {
	var zero kernel.ID

	require.Error(t, zero.Validate())
	assert.False(t, zero.IsAssigned())

	require.NoError(t, kernel.ID(1).Validate())
	assert.True(t, kernel.ID(1).IsAssigned())
}
