package commands

import (
	"errors"
	"strings"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrUnlockLockerCommandIsNotConstructed = errors.New(
	"UnlockLockerCommand must be created via NewUnlockLockerCommand constructor",
)

// UnlockLockerCommand carries the code a customer typed at the locker.
type UnlockLockerCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	lockerID  kernel.ID
	code      string

	guard guard.ConstructorGuard
}

func NewUnlockLockerCommand(principal auth.Principal, lockerID kernel.ID, code string) (UnlockLockerCommand, error) {
	code = strings.TrimSpace(code)
	if err := errors.Join(lockerID.Validate(), requireCode(code)); err != nil {
		return UnlockLockerCommand{}, err
	}

	return UnlockLockerCommand{
		principal: principal,
		lockerID:  lockerID,
		code:      code,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UnlockLockerCommand) Validate() error {
	return c.guard.Validate(ErrUnlockLockerCommandIsNotConstructed)
}

func (c UnlockLockerCommand) Principal() auth.Principal {
	return c.principal
}

func (c UnlockLockerCommand) LockerID() kernel.ID {
	return c.lockerID
}

func (c UnlockLockerCommand) Code() string {
	return c.code
}

func requireCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	return nil
}
