package commands

import (
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/pkg/guard"
)

var ErrCreateLockerCommandIsNotConstructed = errors.New(
	"CreateLockerCommand must be created via NewCreateLockerCommand constructor",
)

// CreateLockerCommand registers a new Available locker.
//
// Number, location and size are validated by the handler after authorization,
// so an unauthorized caller learns nothing about the input rules.
type CreateLockerCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	number    string
	location  string
	size      string

	guard guard.ConstructorGuard
}

func NewCreateLockerCommand(principal auth.Principal, number, location, size string) (CreateLockerCommand, error) {
	return CreateLockerCommand{
		principal: principal,
		number:    number,
		location:  location,
		size:      size,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLockerCommand) Validate() error {
	return c.guard.Validate(ErrCreateLockerCommandIsNotConstructed)
}

func (c CreateLockerCommand) Principal() auth.Principal {
	return c.principal
}

func (c CreateLockerCommand) Number() string {
	return c.number
}

func (c CreateLockerCommand) Location() string {
	return c.location
}

func (c CreateLockerCommand) Size() string {
	return c.size
}
