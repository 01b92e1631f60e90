// Package identity issues and resolves HS256 bearer tokens for accounts.
package identity

import (
	"context"
	"errors"
	"time"

	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "lockers"

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims carries the role next to the account id held in Subject.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWT signs tokens on login and resolves them back into principals. It
// implements both ports.TokenIssuer and ports.IdentityDirectory.
type JWT struct {
	secret     []byte
	ttl        time.Duration
	uowFactory ports.UnitOfWorkFactory
	now        func() time.Time
}

func NewJWT(secret string, ttl time.Duration, uowFactory ports.UnitOfWorkFactory) (*JWT, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("jwt ttl", ttl, time.Second, "unbounded")
	}
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &JWT{
		secret:     []byte(secret),
		ttl:        ttl,
		uowFactory: uowFactory,
		now:        time.Now,
	}, nil
}

// WithClock replaces the time source. Intended for tests.
func (j *JWT) WithClock(now func() time.Time) *JWT {
	j.now = now
	return j
}

func (j *JWT) Issue(acc *account.Account) (string, error) {
	if err := acc.Validate(); err != nil {
		return "", err
	}

	now := j.now()
	claims := Claims{
		Role: acc.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.ID().String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// ResolveToken checks the signature and expiry, then makes sure the account
// still exists and may sign in.
func (j *JWT) ResolveToken(ctx context.Context, token string) (auth.Principal, error) {
	claims, err := j.parse(token)
	if err != nil {
		return auth.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid bearer token", err)
	}

	role, err := auth.RoleFromString(claims.Role)
	if err != nil {
		return auth.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid bearer token", err)
	}
	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return auth.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid bearer token", err)
	}

	acc, err := j.uowFactory.Create().AccountRepository().Get(ctx, role, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return auth.Principal{}, errs.NewUnauthenticatedError("account no longer exists")
		}
		return auth.Principal{}, err
	}
	if !acc.CanAuthenticate() {
		return auth.Principal{}, errs.NewUnauthenticatedError("account is deleted")
	}

	return auth.NewPrincipal(role, id)
}

func (j *JWT) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return j.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
