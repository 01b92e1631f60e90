package commands

import (
	"context"
	"log/slog"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
)

// BookLockerCommandHandler is the booking coordinator. In one transaction it locks
// the locker row, picks the customer's latest order, issues a code, and writes the
// locker (compare-and-swap on Available) and the order. Any failure leaves both
// untouched.
//
// Example:
//
//	handler := NewBookLockerCommandHandler(uowFactory, authorizer, booking, announcer, time.Now, logger)
//	cmd, _ := NewBookLockerCommand(principal, kernel.ID(7))
//	result, err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindConflict:
//	    // someone else holds the locker
//	case errs.KindInvalidState:
//	    // customer has no orders
//	}
type BookLockerCommandHandler struct {
	uowFactory BookingUoWFactory
	authorizer services.Authorizer
	booking    services.LockerBooking
	announcer  Announcer
	clock      func() time.Time
	logger     *slog.Logger
}

func NewBookLockerCommandHandler(
	uowFactory BookingUoWFactory,
	authorizer services.Authorizer,
	booking services.LockerBooking,
	announcer Announcer,
	clock func() time.Time,
	logger *slog.Logger,
) BookLockerCommandHandler {
	return BookLockerCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		booking:    booking,
		announcer:  announcer,
		clock:      clock,
		logger:     logger.With("component", "booking"),
	}
}

func (h BookLockerCommandHandler) Handle(ctx context.Context, cmd BookLockerCommand) (BookLockerResult, error) {
	if err := cmd.Validate(); err != nil {
		return BookLockerResult{}, err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.BookLocker); err != nil {
		return BookLockerResult{}, err
	}

	l, code, err := h.book(ctx, principal.ID(), cmd.LockerID())
	if err != nil {
		return BookLockerResult{}, err
	}

	h.logger.Info("locker booked", "locker_id", l.ID().String(), "customer_id", principal.ID().String())

	h.announcer.AccessCodeIssued(ctx, h.notice(ctx, principal.ID(), l, code))
	h.announcer.LockerChanged(ctx, ports.EventLockerBooked, l, principal)

	return BookLockerResult{LockerID: l.ID(), Code: code.String()}, nil
}

func (h BookLockerCommandHandler) book(
	ctx context.Context,
	customerID kernel.UUID,
	lockerID kernel.ID,
) (*locker.Locker, locker.AccessCode, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, locker.AccessCode{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lockerRepo := uow.LockerRepository()
	orderRepo := uow.OrderRepository()

	l, err := lockerRepo.GetForUpdate(ctx, lockerID)
	if err != nil {
		return nil, locker.AccessCode{}, err
	}

	orders, err := orderRepo.ListVisibleForCustomer(ctx, customerID)
	if err != nil {
		return nil, locker.AccessCode{}, err
	}

	target, code, err := h.booking.Book(l, orders, h.clock())
	if err != nil {
		return nil, locker.AccessCode{}, err
	}

	if err = lockerRepo.UpdateIfStatus(ctx, l, locker.Available); err != nil {
		return nil, locker.AccessCode{}, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, locker.AccessCode{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, locker.AccessCode{}, err
	}

	return l, code, nil
}

// notice reads contact details outside the booking transaction. A failed lookup
// still yields a notice; the notifier skips channels without an address.
func (h BookLockerCommandHandler) notice(
	ctx context.Context,
	customerID kernel.UUID,
	l *locker.Locker,
	code locker.AccessCode,
) ports.AccessCodeNotice {
	notice := ports.AccessCodeNotice{
		CustomerID:   customerID,
		LockerID:     l.ID(),
		LockerNumber: l.Number(),
		Location:     l.Location(),
		Code:         code.String(),
	}

	acc, err := h.uowFactory.Create().AccountRepository().Get(ctx, auth.Customer, customerID)
	if err != nil {
		h.logger.Warn("customer contact lookup failed", "customer_id", customerID.String(), "error", err)
		return notice
	}

	notice.Name = acc.Name()
	notice.Email = acc.Email()
	notice.Phone = acc.Phone()
	return notice
}
