package commands

import (
	"context"
	"errors"
	"log/slog"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"
)

// LockLockerCommandHandler re-occupies an Available locker with the code issued by
// its last booking. Unlike unlock, the comparison is case-sensitive.
type LockLockerCommandHandler struct {
	uowFactory LockerUoWFactory
	authorizer services.Authorizer
	limiter    *services.AttemptLimiter
	announcer  Announcer
	logger     *slog.Logger
}

func NewLockLockerCommandHandler(
	uowFactory LockerUoWFactory,
	authorizer services.Authorizer,
	limiter *services.AttemptLimiter,
	announcer Announcer,
	logger *slog.Logger,
) LockLockerCommandHandler {
	return LockLockerCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		limiter:    limiter,
		announcer:  announcer,
		logger:     logger.With("component", "lock_gate"),
	}
}

// Handle checks, in order: role, existence (NotFound), status (Conflict unless
// Available), lockout (TooManyAttempts), code (InvalidCredential).
func (h LockLockerCommandHandler) Handle(ctx context.Context, cmd LockLockerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.LockLocker); err != nil {
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

	if _, err = l.Status().Lock(); err != nil {
		return err
	}

	if err = h.limiter.Check(l.ID()); err != nil {
		return err
	}

	if err = l.Lock(cmd.Code()); err != nil {
		if errors.Is(err, errs.ErrInvalidCredential) {
			h.limiter.RecordFailure(l.ID())
			h.logger.Info("wrong lock code", "locker_id", l.ID().String(), "customer_id", principal.ID().String())
		}
		return err
	}

	if err = lockerRepo.UpdateIfStatus(ctx, l, locker.Available); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.limiter.Reset(l.ID())
	h.announcer.LockerChanged(ctx, ports.EventLockerLocked, l, principal)
	return nil
}
