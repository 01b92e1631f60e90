package commands

import (
	"errors"
	"strings"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrLockLockerCommandIsNotConstructed = errors.New(
	"LockLockerCommand must be created via NewLockLockerCommand constructor",
)

// LockLockerCommand carries the code a customer typed at the locker.
type LockLockerCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	lockerID  kernel.ID
	code      string

	guard guard.ConstructorGuard
}

func NewLockLockerCommand(principal auth.Principal, lockerID kernel.ID, code string) (LockLockerCommand, error) {
	code = strings.TrimSpace(code)
	if err := errors.Join(lockerID.Validate(), requireCode(code)); err != nil {
		return LockLockerCommand{}, err
	}

	return LockLockerCommand{
		principal: principal,
		lockerID:  lockerID,
		code:      code,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c LockLockerCommand) Validate() error {
	return c.guard.Validate(ErrLockLockerCommandIsNotConstructed)
}

func (c LockLockerCommand) Principal() auth.Principal {
	return c.principal
}

func (c LockLockerCommand) LockerID() kernel.ID {
	return c.lockerID
}

func (c LockLockerCommand) Code() string {
	return c.code
}
