package commands

import (
	"context"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"
)

// UpdatePaymentCommandHandler applies a customer's patch to one of their payments.
type UpdatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewUpdatePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) UpdatePaymentCommandHandler {
	return UpdatePaymentCommandHandler{uowFactory: uowFactory, authorizer: authorizer, clock: clock}
}

func (h UpdatePaymentCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.UpdatePayment); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	p, err := getOwnPayment(ctx, paymentRepo, cmd.PaymentID(), principal.ID())
	if err != nil {
		return nil, err
	}

	if err = p.Apply(cmd.Patch(), h.clock()); err != nil {
		return nil, err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// RequestPaymentDeletionCommandHandler opens a deletion request for a customer's payment.
type RequestPaymentDeletionCommandHandler struct {
	uowFactory PaymentUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewRequestPaymentDeletionCommandHandler(
	uowFactory PaymentUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) RequestPaymentDeletionCommandHandler {
	return RequestPaymentDeletionCommandHandler{uowFactory: uowFactory, authorizer: authorizer, clock: clock}
}

func (h RequestPaymentDeletionCommandHandler) Handle(ctx context.Context, cmd DeletionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.RequestPaymentDeletion); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	now := h.clock()

	p, err := getOwnPayment(ctx, paymentRepo, cmd.SubjectID(), principal.ID())
	if err != nil {
		return err
	}

	if err = p.RequestDeletion(now); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = openDeletionRequest(ctx, uow.DeletionRequestRepository(), deletion.SubjectPayment, p.ID(), principal.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// FinalizePaymentDeletionCommandHandler tombstones a payment on behalf of staff.
type FinalizePaymentDeletionCommandHandler struct {
	uowFactory PaymentUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewFinalizePaymentDeletionCommandHandler(
	uowFactory PaymentUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) FinalizePaymentDeletionCommandHandler {
	return FinalizePaymentDeletionCommandHandler{uowFactory: uowFactory, authorizer: authorizer, clock: clock}
}

func (h FinalizePaymentDeletionCommandHandler) Handle(ctx context.Context, cmd DeletionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.FinalizePaymentDeletion); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	now := h.clock()

	p, err := paymentRepo.Get(ctx, cmd.SubjectID())
	if err != nil {
		return err
	}

	if err = p.FinalizeDeletion(now); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = closeDeletionRequest(ctx, uow.DeletionRequestRepository(), deletion.SubjectPayment, p.ID(), principal.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func getOwnPayment(
	ctx context.Context,
	repo ports.PaymentRepository,
	paymentID, customerID kernel.UUID,
) (*payment.Payment, error) {
	p, err := repo.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if !p.IsOwnedBy(customerID) || !p.Lifecycle().IsVisible() {
		return nil, errs.NewObjectNotFoundError("payment", paymentID.String())
	}

	return p, nil
}
