package commands

import (
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrDeleteLockerCommandIsNotConstructed = errors.New(
	"DeleteLockerCommand must be created via NewDeleteLockerCommand constructor",
)

// DeleteLockerCommand removes a locker that holds no laundry.
type DeleteLockerCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	lockerID  kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteLockerCommand(principal auth.Principal, lockerID kernel.ID) (DeleteLockerCommand, error) {
	if err := lockerID.Validate(); err != nil {
		return DeleteLockerCommand{}, err
	}

	return DeleteLockerCommand{
		principal: principal,
		lockerID:  lockerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteLockerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLockerCommandIsNotConstructed)
}

func (c DeleteLockerCommand) Principal() auth.Principal {
	return c.principal
}

func (c DeleteLockerCommand) LockerID() kernel.ID {
	return c.lockerID
}
