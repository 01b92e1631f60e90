package dberr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lockers/internal/adapters/out/postgres/dberr"
	"lockers/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, dberr.Translate(nil, "locker", 1))
	})

	t.Run("record not found becomes NotFound", func(t *testing.T) {
		err := dberr.Translate(fmt.Errorf("first: %w", gorm.ErrRecordNotFound), "locker", 7)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, "object not found: 7", err.Error())
	})

	t.Run("duplicated key becomes Conflict", func(t *testing.T) {
		err := dberr.Translate(gorm.ErrDuplicatedKey, "locker", "L-1")
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("postgres unique violation becomes Conflict", func(t *testing.T) {
		err := dberr.Translate(&pgconn.PgError{Code: "23505"}, "account", "a@b.c")
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("sqlite unique text becomes Conflict", func(t *testing.T) {
		err := dberr.Translate(errors.New("UNIQUE constraint failed: lockers.number"), "locker", "L-1")
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("anything else becomes Unavailable", func(t *testing.T) {
		err := dberr.Translate(context.DeadlineExceeded, "locker", 1)
		require.ErrorIs(t, err, errs.ErrUnavailable)
		assert.Equal(t, errs.KindUnavailable, errs.KindOf(err))
	})

	t.Run("typed errors pass through", func(t *testing.T) {
		conflict := errs.NewConflictError("locker is already booked")
		assert.Same(t, conflict, dberr.Translate(conflict, "locker", 1))
	})
}
