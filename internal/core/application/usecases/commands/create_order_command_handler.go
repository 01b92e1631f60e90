package commands

import (
	"context"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/core/domain/services"
)

// CreateOrderCommandHandler stores a new Active order for the calling customer.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		clock:      clock,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.CreateOrder); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), principal.ID(), cmd.Services(), cmd.Weight(), h.clock())
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

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
