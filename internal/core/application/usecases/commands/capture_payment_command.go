package commands

import (
	"errors"
	"strings"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrCapturePaymentCommandIsNotConstructed = errors.New(
	"CapturePaymentCommand must be created via NewCapturePaymentCommand constructor",
)

// CapturePaymentCommand charges a tokenized card and links the payment to the
// customer's latest order. An empty currency falls back to the configured one.
type CapturePaymentCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	amount    float64
	currency  string
	cardToken string

	guard guard.ConstructorGuard
}

func NewCapturePaymentCommand(
	principal auth.Principal,
	amount float64,
	currency, cardToken string,
) (CapturePaymentCommand, error) {
	cardToken = strings.TrimSpace(cardToken)
	if cardToken == "" {
		return CapturePaymentCommand{}, errs.NewValueIsRequiredError("card token")
	}

	return CapturePaymentCommand{
		principal: principal,
		amount:    amount,
		currency:  strings.TrimSpace(currency),
		cardToken: cardToken,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CapturePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCapturePaymentCommandIsNotConstructed)
}

func (c CapturePaymentCommand) Principal() auth.Principal {
	return c.principal
}

func (c CapturePaymentCommand) Amount() float64 {
	return c.amount
}

func (c CapturePaymentCommand) Currency() string {
	return c.currency
}

func (c CapturePaymentCommand) CardToken() string {
	return c.cardToken
}
