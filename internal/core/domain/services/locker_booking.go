package services

import (
	"time"

	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/pkg/errs"
)

// LockerBooking is a domain service that reserves a locker for the customer's most
// recent order and issues the access code.
//
// Business rules, checked in this order:
//   - The locker must be Available (Conflict otherwise)
//   - The customer must have at least one visible order (InvalidState otherwise)
//   - The most recent order wins: latest creation time, then highest identifier
//   - Locker and order change together or not at all
//
// Example usage:
//
//	booking := services.NewLockerBooking(services.NewRandomCodeGenerator())
//	target, code, err := booking.Book(l, customerOrders, time.Now())
//	if err != nil {
//	    // Conflict, InvalidState or generator failure
//	}
type LockerBooking struct {
	codes CodeGenerator
}

func NewLockerBooking(codes CodeGenerator) LockerBooking {
	return LockerBooking{codes: codes}
}

// Book occupies l with a fresh code and records it on the latest order.
//
// Returns the order that received the locker and the issued code.
func (b LockerBooking) Book(
	l *locker.Locker,
	orders []*order.Order,
	now time.Time,
) (*order.Order, locker.AccessCode, error) {
	if err := l.Validate(); err != nil {
		return nil, locker.AccessCode{}, err
	}

	if !l.IsAvailable() {
		return nil, locker.AccessCode{}, errs.NewConflictError("locker is already booked")
	}

	target, err := SelectLatestOrder(orders)
	if err != nil {
		return nil, locker.AccessCode{}, err
	}

	code, err := b.codes.Generate()
	if err != nil {
		return nil, locker.AccessCode{}, err
	}

	if err = l.Book(code); err != nil {
		return nil, locker.AccessCode{}, err
	}

	if err = target.AssignLocker(l.ID(), code, now); err != nil {
		return nil, locker.AccessCode{}, err
	}

	return target, code, nil
}
