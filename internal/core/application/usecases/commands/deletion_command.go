package commands

import (
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrDeletionCommandIsNotConstructed = errors.New(
	"DeletionCommand must be created via NewDeletionCommand constructor",
)

// DeletionCommand targets one order or payment for a deletion request or for
// final deletion. The handler decides which.
type DeletionCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	subjectID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletionCommand(principal auth.Principal, subjectID kernel.UUID) (DeletionCommand, error) {
	if err := subjectID.Validate(); err != nil {
		return DeletionCommand{}, err
	}

	return DeletionCommand{
		principal: principal,
		subjectID: subjectID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeletionCommand) Validate() error {
	return c.guard.Validate(ErrDeletionCommandIsNotConstructed)
}

func (c DeletionCommand) Principal() auth.Principal {
	return c.principal
}

func (c DeletionCommand) SubjectID() kernel.UUID {
	return c.subjectID
}
