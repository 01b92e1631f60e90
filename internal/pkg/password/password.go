// Package password hashes account passwords with bcrypt.
package password

import (
	"errors"

	"lockers/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt cost used outside of tests.
	DefaultCost = 12

	// MinLength is the shortest password accepted at registration.
	MinLength = 8
)

// Hasher implements ports.PasswordHasher.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given cost. Costs outside bcrypt's range
// fall back to DefaultCost.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{cost: cost}
}

func (h Hasher) Hash(plain string) (string, error) {
	if err := Validate(plain); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errs.NewValueIsInvalidErrorWithCause("password", err)
		}
		return "", err
	}
	return string(hash), nil
}

// Compare returns an InvalidCredentialError when plain does not match hash.
func (h Hasher) Compare(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return errs.NewInvalidCredentialError("password mismatch")
	}
	return nil
}

// Validate checks the registration rules for a password.
func Validate(plain string) error {
	if plain == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(plain) < MinLength {
		return errs.NewValueIsOutOfRangeError("password length", len(plain), MinLength, 72)
	}
	return nil
}
