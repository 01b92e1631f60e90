package commands

import (
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer placing a laundry order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(principal, "wash and fold", 4.5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, authorizer, time.Now)
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	services  string
	weight    float64

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(principal auth.Principal, services string, weight float64) (CreateOrderCommand, error) {
	return CreateOrderCommand{
		principal: principal,
		services:  services,
		weight:    weight,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() auth.Principal {
	return c.principal
}

func (c CreateOrderCommand) Services() string {
	return c.services
}

func (c CreateOrderCommand) Weight() float64 {
	return c.weight
}
