package commands

import (
	"context"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/services"
)

// DeleteLockerCommandHandler removes lockers from the registry under a row lock,
// so a concurrent booking cannot slip in between the check and the delete.
type DeleteLockerCommandHandler struct {
	uowFactory LockerUoWFactory
	authorizer services.Authorizer
}

func NewDeleteLockerCommandHandler(uowFactory LockerUoWFactory, authorizer services.Authorizer) DeleteLockerCommandHandler {
	return DeleteLockerCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle returns NotFound for an unknown locker and Conflict for an Occupied one.
func (h DeleteLockerCommandHandler) Handle(ctx context.Context, cmd DeleteLockerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(cmd.Principal(), auth.DeleteLocker); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lockerRepo := uow.LockerRepository()

	l, err := lockerRepo.GetForUpdate(ctx, cmd.LockerID())
	if err != nil {
		return err
	}

	if err = l.EnsureRemovable(); err != nil {
		return err
	}

	if err = lockerRepo.Delete(ctx, l.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
