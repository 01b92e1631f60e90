package ports

import (
	"context"

	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
)

// IdentityDirectory resolves bearer tokens into principals.
type IdentityDirectory interface {
	// ResolveToken returns an UnauthenticatedError for an invalid or expired token
	// and for an account that no longer exists or is deleted.
	ResolveToken(ctx context.Context, token string) (auth.Principal, error)
}

// TokenIssuer mints bearer tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(acc *account.Account) (string, error)
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
