package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"
)

// CapturePaymentCommandHandler charges the customer through the payment gateway,
// then records the payment and links it into the latest order in one transaction.
// A gateway failure persists nothing.
type CapturePaymentCommandHandler struct {
	uowFactory      PaymentUoWFactory
	authorizer      services.Authorizer
	gateway         ports.PaymentGateway
	defaultCurrency string
	clock           func() time.Time
	logger          *slog.Logger
}

func NewCapturePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	authorizer services.Authorizer,
	gateway ports.PaymentGateway,
	defaultCurrency string,
	clock func() time.Time,
	logger *slog.Logger,
) CapturePaymentCommandHandler {
	return CapturePaymentCommandHandler{
		uowFactory:      uowFactory,
		authorizer:      authorizer,
		gateway:         gateway,
		defaultCurrency: defaultCurrency,
		clock:           clock,
		logger:          logger.With("component", "payments"),
	}
}

func (h CapturePaymentCommandHandler) Handle(ctx context.Context, cmd CapturePaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.CapturePayment); err != nil {
		return nil, err
	}

	if err := payment.ValidateAmount(cmd.Amount()); err != nil {
		return nil, err
	}

	currency := cmd.Currency()
	if currency == "" {
		currency = h.defaultCurrency
	}

	// refuse to charge a customer who has nothing to pay for
	orders, err := h.uowFactory.Create().OrderRepository().ListVisibleForCustomer(ctx, principal.ID())
	if err != nil {
		return nil, err
	}
	if _, err = services.SelectLatestOrder(orders); err != nil {
		return nil, err
	}

	if h.gateway == nil {
		return nil, errs.NewUnavailableError("payment gateway", errors.New("no gateway configured"))
	}

	result, err := h.gateway.Capture(ctx, ports.CaptureRequest{
		Amount:      cmd.Amount(),
		Currency:    currency,
		CardToken:   cmd.CardToken(),
		Description: fmt.Sprintf("laundry order payment for customer %s", principal.ID()),
	})
	if err != nil {
		if errs.KindOf(err) == errs.KindInternal {
			err = errs.NewUnavailableError("payment gateway", err)
		}
		return nil, err
	}

	p, err := h.record(ctx, principal.ID(), cmd.Amount(), currency, result)
	if err != nil {
		h.logger.Error("captured charge was not recorded",
			"charge_id", result.ChargeID,
			"customer_id", principal.ID().String(),
			"error", err)
		return nil, err
	}

	h.logger.Info("payment captured", "payment_id", p.ID().String(), "charge_id", p.ChargeID())
	return p, nil
}

func (h CapturePaymentCommandHandler) record(
	ctx context.Context,
	customerID kernel.UUID,
	amount float64,
	currency string,
	result ports.CaptureResult,
) (*payment.Payment, error) {
	now := h.clock()

	p, err := payment.NewPayment(kernel.NewUUID(), customerID, amount, currency, result.ChargeID, result.Status, now)
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

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.ListVisibleForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	latest, err := services.SelectLatestOrder(orders)
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = latest.LinkPayment(p.ID(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, latest); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
