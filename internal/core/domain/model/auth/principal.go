package auth

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is an authenticated caller as resolved by the identity directory.
type Principal struct {
	role  Role
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewPrincipal(role Role, id kernel.UUID) (Principal, error) {
	if err := errors.Join(role.Validate(), id.Validate()); err != nil {
		return Principal{}, err
	}
	return Principal{role: role, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) ID() kernel.UUID {
	return p.id
}
