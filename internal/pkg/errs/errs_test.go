package errs_test

import (
	"errors"
	"testing"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		id   any
		want string
	}{
		{"numeric locker id", uint64(7), "object not found: 7"},
		{"kernel id", kernel.ID(42), "object not found: 42"},
		{"uuid string", "8f14e45f-ceea-4d6e-9a8b-0b5f0c3e2a11", "object not found: 8f14e45f-ceea-4d6e-9a8b-0b5f0c3e2a11"},
		{"list filter", "booked", "object not found: booked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errs.NewObjectNotFoundError("locker", tt.id)

			assert.Equal(t, tt.want, err.Error())
			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		})
	}

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("order", 12, cause)

		assert.Equal(t, "object not found: param is: order, ID is: 12 (cause: record not found)", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			"missing locker number",
			errs.NewValueIsRequiredError("number"),
			errs.ErrValueIsRequired,
			"value is required: number",
		},
		{
			"bad access code",
			errs.NewValueIsInvalidErrorWithCause("code", errors.New("length 5 is not 6")),
			errs.ErrValueIsInvalid,
			"value is invalid: code (cause: length 5 is not 6)",
		},
		{
			"number too long",
			errs.NewValueIsOutOfRangeError("number length", 51, 1, 50),
			errs.ErrValueIsOutOfRange,
			"value is invalid: 51 is number length, min value is 1, max value is 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, errs.KindInvalidInput, errs.KindOf(tt.err))
		})
	}
}

func TestValueIsOutOfRangeError_StripsNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("location", "Building A\nground floor", 1, 255)

	assert.Contains(t, err.Error(), "Building A ground floor")
	assert.NotContains(t, err.Error(), "\n")
}
