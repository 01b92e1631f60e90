package errs_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"unauthenticated", errs.NewUnauthenticatedError("token expired"), errs.KindUnauthenticated},
		{"unauthorized", errs.NewUnauthorizedError("book locker", "courier"), errs.KindUnauthorized},
		{"not found", errs.NewObjectNotFoundError("locker", 7), errs.KindNotFound},
		{"conflict", errs.NewConflictError("locker is already booked"), errs.KindConflict},
		{"invalid state", errs.NewInvalidStateError("no orders found"), errs.KindInvalidState},
		{"invalid credential", errs.NewInvalidCredentialError("invalid code, try again"), errs.KindInvalidCredential},
		{"too many attempts", errs.NewTooManyAttemptsError("locker 7", time.Minute), errs.KindTooManyAttempts},
		{"unavailable", errs.NewUnavailableError("storage", errors.New("dial tcp")), errs.KindUnavailable},
		{"invalid input", errs.NewValueIsRequiredError("number"), errs.KindInvalidInput},
		{"out of range", errs.NewValueIsOutOfRangeError("weight", -1, 0, 100), errs.KindInvalidInput},
		{"wrapped conflict", fmt.Errorf("book: %w", errs.NewConflictError("x")), errs.KindConflict},
		{"plain", errors.New("boom"), errs.KindInternal},
		{"nil", nil, errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestTooManyAttemptsError(t *testing.T) {
	err := errs.NewTooManyAttemptsError("locker 3", 90*time.Second)

	require.ErrorIs(t, err, errs.ErrTooManyAttempts)
	require.ErrorIs(t, err, errs.ErrInvalidCredential)
	assert.Equal(t, "too many attempts: locker 3, retry after 1m30s", err.Error())
}

func TestUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewUnavailableError("storage", cause)

	require.ErrorIs(t, err, errs.ErrUnavailable)
	assert.NotErrorIs(t, err, cause)
	assert.Equal(t, "unavailable: storage (cause: connection refused)", err.Error())
}

func TestConflictError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewConflictError("locker is already booked")
		assert.Equal(t, "conflict: locker is already booked", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewConflictErrorWithCause("number already exists", errors.New("duplicate key"))
		assert.Equal(t, "conflict: number already exists (cause: duplicate key)", err.Error())
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Conflict", errs.KindConflict.String())
	assert.Equal(t, "InvalidCredential", errs.KindInvalidCredential.String())
	assert.Equal(t, "Internal", errs.Kind(99).String())
}
