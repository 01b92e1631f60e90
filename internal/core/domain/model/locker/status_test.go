package locker_test

import (
	"testing"

	"lockers/internal/core/domain/model/locker"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		transition func(locker.Status) (locker.Status, error)
		from       locker.Status
		want       locker.Status
		wantErr    bool
	}{
		{"book available", locker.Status.Book, locker.Available, locker.Occupied, false},
		{"book occupied", locker.Status.Book, locker.Occupied, 0, true},
		{"unlock occupied", locker.Status.Unlock, locker.Occupied, locker.Available, false},
		{"unlock available", locker.Status.Unlock, locker.Available, 0, true},
		{"lock available", locker.Status.Lock, locker.Available, locker.Occupied, false},
		{"lock occupied", locker.Status.Lock, locker.Occupied, 0, true},
		{"book unknown", locker.Status.Book, locker.Unknown, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.transition(tt.from)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrConflict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusFromString(t *testing.T) {
	s, err := locker.StatusFromString("OCCUPIED")
	require.NoError(t, err)
	assert.Equal(t, locker.Occupied, s)

	s, err = locker.StatusFromString("available")
	require.NoError(t, err)
	assert.Equal(t, locker.Available, s)

	_, err = locker.StatusFromString("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, locker.Available.Validate())
	require.NoError(t, locker.Occupied.Validate())
	require.Error(t, locker.Unknown.Validate())
	assert.Equal(t, "unknown", locker.Status(42).String())
}

func TestSizeFromString(t *testing.T) {
	for in, want := range map[string]locker.Size{"small": locker.Small, "MEDIUM": locker.Medium, " large ": locker.Large} {
		got, err := locker.SizeFromString(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := locker.SizeFromString("huge")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "medium", locker.Medium.String())
}
