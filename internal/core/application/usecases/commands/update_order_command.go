package commands

import (
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand changes only the fields present in the patch.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	patch     order.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(principal auth.Principal, orderID kernel.UUID, patch order.Patch) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		principal: principal,
		orderID:   orderID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Principal() auth.Principal {
	return c.principal
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}
