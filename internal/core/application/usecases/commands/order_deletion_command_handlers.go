package commands

import (
	"context"
	"fmt"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"
)

// RequestOrderDeletionCommandHandler lets a customer ask staff to delete one of
// their orders. The order stays visible until staff finalize it.
type RequestOrderDeletionCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewRequestOrderDeletionCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) RequestOrderDeletionCommandHandler {
	return RequestOrderDeletionCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		clock:      clock,
	}
}

// Handle returns Conflict when a request is already open.
func (h RequestOrderDeletionCommandHandler) Handle(ctx context.Context, cmd DeletionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.RequestOrderDeletion); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	now := h.clock()

	o, err := getOwnOrder(ctx, orderRepo, cmd.SubjectID(), principal.ID())
	if err != nil {
		return err
	}

	if err = o.RequestDeletion(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = openDeletionRequest(ctx, uow.DeletionRequestRepository(), deletion.SubjectOrder, o.ID(), principal.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// FinalizeOrderDeletionCommandHandler tombstones an order on behalf of staff.
type FinalizeOrderDeletionCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewFinalizeOrderDeletionCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) FinalizeOrderDeletionCommandHandler {
	return FinalizeOrderDeletionCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		clock:      clock,
	}
}

// Handle returns Conflict while the order still holds an Occupied locker, and
// marks an open deletion request as processed.
func (h FinalizeOrderDeletionCommandHandler) Handle(ctx context.Context, cmd DeletionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.FinalizeOrderDeletion); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	now := h.clock()

	o, err := orderRepo.Get(ctx, cmd.SubjectID())
	if err != nil {
		return err
	}

	if err = ensureLockerReleased(ctx, uow.LockerRepository(), o); err != nil {
		return err
	}

	if err = o.FinalizeDeletion(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = closeDeletionRequest(ctx, uow.DeletionRequestRepository(), deletion.SubjectOrder, o.ID(), principal.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureLockerReleased rejects deleting an order whose code still opens an Occupied locker.
func ensureLockerReleased(ctx context.Context, lockers ports.LockerRepository, o *order.Order) error {
	lockerID, code := o.LockerID(), o.LockerCode()
	if lockerID == nil || code == nil {
		return nil
	}

	l, err := lockers.GetForUpdate(ctx, *lockerID)
	if errs.KindOf(err) == errs.KindNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	if l.Status() == locker.Occupied && l.Code() != nil && l.Code().Equals(code.String()) {
		return errs.NewConflictError(fmt.Sprintf("order %s still holds locker %s", o.ID(), l.Number()))
	}

	return nil
}

func openDeletionRequest(
	ctx context.Context,
	repo ports.DeletionRequestRepository,
	kind deletion.SubjectKind,
	subjectID, requestedBy kernel.UUID,
	at time.Time,
) error {
	req, err := deletion.NewRequest(kernel.NewUUID(), kind, subjectID, requestedBy, at)
	if err != nil {
		return err
	}
	return repo.Add(ctx, req)
}

// closeDeletionRequest marks the subject's open request processed. Staff may
// finalize without a request, so a missing one is fine.
func closeDeletionRequest(
	ctx context.Context,
	repo ports.DeletionRequestRepository,
	kind deletion.SubjectKind,
	subjectID, processedBy kernel.UUID,
	at time.Time,
) error {
	req, err := repo.FindBySubject(ctx, kind, subjectID)
	if errs.KindOf(err) == errs.KindNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	if req.IsProcessed() {
		return nil
	}

	if err = req.Process(processedBy, at); err != nil {
		return err
	}
	return repo.Update(ctx, req)
}
