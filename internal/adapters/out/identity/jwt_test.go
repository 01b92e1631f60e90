package identity_test

import (
	"testing"
	"time"

	"lockers/internal/adapters/out/identity"
	"lockers/internal/adapters/out/postgres"
	"lockers/internal/adapters/out/postgres/testdb"
	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

var issuedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	factory *postgres.GormUnitOfWorkFactory
	jwt     *identity.JWT
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		factory: postgres.NewGormUnitOfWorkFactory(testdb.Open(t)),
		now:     issuedAt,
	}
	j, err := identity.NewJWT(secret, time.Hour, f.factory)
	require.NoError(t, err)
	f.jwt = j.WithClock(func() time.Time { return f.now })
	return f
}

func (f *fixture) addAccount(t *testing.T, role auth.Role) *account.Account {
	t.Helper()

	var vehicle *string
	if role == auth.Courier {
		v := "AB-1234"
		vehicle = &v
	}
	acc, err := account.NewAccount(kernel.NewUUID(), role, "Ada", "ada@example.com", "+15550100", "hash", vehicle, issuedAt)
	require.NoError(t, err)
	require.NoError(t, f.factory.Create().AccountRepository().Add(t.Context(), acc))
	return acc
}

func TestJWT_IssueAndResolve(t *testing.T) {
	f := newFixture(t)
	acc := f.addAccount(t, auth.Courier)

	token, err := f.jwt.Issue(acc)
	require.NoError(t, err)

	principal, err := f.jwt.ResolveToken(t.Context(), token)

	require.NoError(t, err)
	assert.Equal(t, auth.Courier, principal.Role())
	assert.Equal(t, acc.ID(), principal.ID())
}

func TestJWT_ResolveToken_Rejections(t *testing.T) {
	f := newFixture(t)
	acc := f.addAccount(t, auth.Customer)
	token, err := f.jwt.Issue(acc)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		f.now = issuedAt.Add(2 * time.Hour)
		defer func() { f.now = issuedAt }()

		_, err := f.jwt.ResolveToken(t.Context(), token)

		assert.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))
		assert.ErrorContains(t, err, identity.ErrTokenExpired.Error())
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other, err := identity.NewJWT("another-secret", time.Hour, f.factory)
		require.NoError(t, err)
		forged, err := other.WithClock(func() time.Time { return issuedAt }).Issue(acc)
		require.NoError(t, err)

		_, err = f.jwt.ResolveToken(t.Context(), forged)

		assert.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := identity.Claims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   acc.ID().String(),
				Issuer:    "lockers",
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = f.jwt.ResolveToken(t.Context(), unsigned)

		assert.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := f.jwt.ResolveToken(t.Context(), "not.a.token")

		assert.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))
	})
}

func TestJWT_ResolveToken_AccountGone(t *testing.T) {
	f := newFixture(t)
	acc := f.addAccount(t, auth.Customer)
	token, err := f.jwt.Issue(acc)
	require.NoError(t, err)

	require.NoError(t, acc.FinalizeDeletion())
	require.NoError(t, f.factory.Create().AccountRepository().Update(t.Context(), acc))

	_, err = f.jwt.ResolveToken(t.Context(), token)
	assert.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))

	unknown, err := account.NewAccount(kernel.NewUUID(), auth.Customer, "Bob", "bob@example.com", "+15550101", "hash", nil, issuedAt)
	require.NoError(t, err)
	token, err = f.jwt.Issue(unknown)
	require.NoError(t, err)

	_, err = f.jwt.ResolveToken(t.Context(), token)
	assert.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))
}

func TestNewJWT_Validation(t *testing.T) {
	factory := postgres.NewGormUnitOfWorkFactory(testdb.Open(t))

	_, err := identity.NewJWT("", time.Hour, factory)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = identity.NewJWT(secret, 0, factory)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
