package auth

import (
	"fmt"
	"strings"

	"lockers/internal/pkg/errs"
)

// Role is the kind of account a caller authenticated as.
type Role string

const (
	Customer   Role = "customer"
	Courier    Role = "courier"
	Laundromat Role = "laundromat"
	Admin      Role = "admin"
)

// Roles lists every role in a stable order.
func Roles() []Role {
	return []Role{Customer, Courier, Laundromat, Admin}
}

func RoleFromString(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) Validate() error {
	switch r {
	case Customer, Courier, Laundromat, Admin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

// IsStaff reports whether the role operates the locker network rather than using it.
func (r Role) IsStaff() bool {
	return r == Laundromat || r == Admin
}

func (r Role) String() string {
	return string(r)
}
