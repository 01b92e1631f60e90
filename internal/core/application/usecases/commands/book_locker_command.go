package commands

import (
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrBookLockerCommandIsNotConstructed = errors.New(
	"BookLockerCommand must be created via NewBookLockerCommand constructor",
)

// BookLockerCommand reserves a locker for the calling customer's latest order.
type BookLockerCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	lockerID  kernel.ID

	guard guard.ConstructorGuard
}

func NewBookLockerCommand(principal auth.Principal, lockerID kernel.ID) (BookLockerCommand, error) {
	if err := lockerID.Validate(); err != nil {
		return BookLockerCommand{}, err
	}

	return BookLockerCommand{
		principal: principal,
		lockerID:  lockerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c BookLockerCommand) Validate() error {
	return c.guard.Validate(ErrBookLockerCommandIsNotConstructed)
}

func (c BookLockerCommand) Principal() auth.Principal {
	return c.principal
}

func (c BookLockerCommand) LockerID() kernel.ID {
	return c.lockerID
}

// BookLockerResult is what the customer needs to open the locker.
type BookLockerResult struct {
	LockerID kernel.ID
	Code     string
}
