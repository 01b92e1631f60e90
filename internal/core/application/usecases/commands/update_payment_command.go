package commands

import (
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/guard"
)

var ErrUpdatePaymentCommandIsNotConstructed = errors.New(
	"UpdatePaymentCommand must be created via NewUpdatePaymentCommand constructor",
)

type UpdatePaymentCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	paymentID kernel.UUID
	patch     payment.Patch

	guard guard.ConstructorGuard
}

func NewUpdatePaymentCommand(
	principal auth.Principal,
	paymentID kernel.UUID,
	patch payment.Patch,
) (UpdatePaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return UpdatePaymentCommand{}, err
	}

	return UpdatePaymentCommand{
		principal: principal,
		paymentID: paymentID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentCommandIsNotConstructed)
}

func (c UpdatePaymentCommand) Principal() auth.Principal {
	return c.principal
}

func (c UpdatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c UpdatePaymentCommand) Patch() payment.Patch {
	return c.patch
}
