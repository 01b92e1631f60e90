package accountrepo_test

import (
	"fmt"
	"testing"
	"time"

	"lockers/internal/adapters/out/postgres/accountrepo"
	"lockers/internal/adapters/out/postgres/testdb"
	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(fmt.Stringer, any) {}

var now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newAccount(t *testing.T, role auth.Role, email, phone string, vehicle *string) *account.Account {
	t.Helper()
	a, err := account.NewAccount(kernel.NewUUID(), role, "Pat", email, phone, "$2a$10$hash", vehicle, now)
	require.NoError(t, err)
	return a
}

func TestGormAccountRepository(t *testing.T) {
	ctx := t.Context()
	repo := accountrepo.NewGormAccountRepository(testdb.Open(t), noopTracker{})

	customer := newAccount(t, auth.Customer, "Pat@Example.com", "+6600000001", nil)
	require.NoError(t, repo.Add(ctx, customer))

	t.Run("lookup by e-mail ignores case", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, auth.Customer, "PAT@example.com")
		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(customer.ID()))
	})

	t.Run("role scopes lookups", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, auth.Admin, "pat@example.com")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = repo.Get(ctx, auth.Courier, customer.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("same e-mail in another role is allowed", func(t *testing.T) {
		vehicle := "AB-1234"
		courier := newAccount(t, auth.Courier, "pat@example.com", "+6600000001", &vehicle)
		require.NoError(t, repo.Add(ctx, courier))

		got, err := repo.Get(ctx, auth.Courier, courier.ID())
		require.NoError(t, err)
		require.NotNil(t, got.Vehicle())
		assert.Equal(t, "AB-1234", *got.Vehicle())
	})

	t.Run("duplicate e-mail within a role is a conflict", func(t *testing.T) {
		dup := newAccount(t, auth.Customer, "pat@example.com", "+6600000002", nil)
		require.ErrorIs(t, repo.Add(ctx, dup), errs.ErrConflict)
	})

	t.Run("duplicate phone within a role is a conflict", func(t *testing.T) {
		dup := newAccount(t, auth.Customer, "other@example.com", "+6600000001", nil)
		require.ErrorIs(t, repo.Add(ctx, dup), errs.ErrConflict)
	})

	t.Run("lifecycle update and count", func(t *testing.T) {
		count, err := repo.CountByRole(ctx, auth.Customer)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		require.NoError(t, customer.FinalizeDeletion())
		require.NoError(t, repo.Update(ctx, customer))

		got, err := repo.Get(ctx, auth.Customer, customer.ID())
		require.NoError(t, err)
		assert.Equal(t, deletion.Deleted, got.Lifecycle())

		count, err = repo.CountByRole(ctx, auth.Customer)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("delete staff account", func(t *testing.T) {
		staff := newAccount(t, auth.Laundromat, "shop@example.com", "+6600000009", nil)
		require.NoError(t, repo.Add(ctx, staff))

		require.NoError(t, repo.Delete(ctx, auth.Laundromat, staff.ID()))
		require.ErrorIs(t, repo.Delete(ctx, auth.Laundromat, staff.ID()), errs.ErrObjectNotFound)
	})
}
