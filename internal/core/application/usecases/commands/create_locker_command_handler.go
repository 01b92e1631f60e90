package commands

import (
	"context"
	"fmt"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/errs"
)

// CreateLockerCommandHandler adds lockers to the registry. Admins and laundromats only.
//
// Example:
//
//	handler := NewCreateLockerCommandHandler(uowFactory, authorizer)
//	cmd, _ := NewCreateLockerCommand(principal, "L-100", "Building A", "medium")
//	l, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // number already taken
//	}
type CreateLockerCommandHandler struct {
	uowFactory LockerUoWFactory
	authorizer services.Authorizer
}

func NewCreateLockerCommandHandler(uowFactory LockerUoWFactory, authorizer services.Authorizer) CreateLockerCommandHandler {
	return CreateLockerCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle validates the locker attributes and stores it with status Available and
// no code. The returned locker carries its storage-assigned id.
func (h CreateLockerCommandHandler) Handle(ctx context.Context, cmd CreateLockerCommand) (*locker.Locker, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(cmd.Principal(), auth.CreateLocker); err != nil {
		return nil, err
	}

	size, err := locker.SizeFromString(cmd.Size())
	if err != nil {
		return nil, err
	}

	l, err := locker.NewLocker(cmd.Number(), cmd.Location(), size)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lockerRepo := uow.LockerRepository()

	exists, err := lockerRepo.NumberExists(ctx, l.Number())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError(fmt.Sprintf("locker number %s already exists", l.Number()))
	}

	// the unique index still catches a concurrent insert of the same number
	if err = lockerRepo.Add(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
