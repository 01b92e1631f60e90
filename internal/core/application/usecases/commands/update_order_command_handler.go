package commands

import (
	"context"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies a customer's patch to one of their own orders.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		clock:      clock,
	}
}

// Handle reports another customer's order, or a deleted one, as NotFound.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.UpdateOrder); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := getOwnOrder(ctx, orderRepo, cmd.OrderID(), principal.ID())
	if err != nil {
		return nil, err
	}

	if err = o.Apply(cmd.Patch(), h.clock()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func getOwnOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	orderID, customerID kernel.UUID,
) (*order.Order, error) {
	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(customerID) || !o.Lifecycle().IsVisible() {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	return o, nil
}
