package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer's laundry job.
//
// Order follows these invariants:
//   - Must have a valid identifier and owning customer
//   - Services are non-empty and weight is positive
//   - A locker reference and its access code are set together
//   - Deleted orders cannot change
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	services   string
	weight     float64

	// paymentID links the capture that paid for this order
	paymentID *kernel.UUID

	// lockerID is a weak reference; the locker may be deleted later
	lockerID   *kernel.ID
	lockerCode *locker.AccessCode

	createdAt time.Time
	updatedAt time.Time
	lifecycle deletion.Lifecycle

	guard guard.ConstructorGuard
}

// State is the persisted form of an order, used by RestoreOrder.
type State struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Services   string
	Weight     float64
	PaymentID  *kernel.UUID
	LockerID   *kernel.ID
	LockerCode *locker.AccessCode
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Lifecycle  deletion.Lifecycle
}

// NewOrder creates an active order without locker or payment.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, "wash and fold", 4.5, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, customerID kernel.UUID, services string, weight float64, now time.Time) (*Order, error) {
	o := &Order{
		lifecycle: deletion.Active,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setServices(services),
		o.setWeight(weight),
		validateTimestamp("created at", now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		paymentID:  s.PaymentID,
		lockerID:   s.LockerID,
		lockerCode: s.LockerCode,
		createdAt:  s.CreatedAt.UTC(),
		updatedAt:  s.UpdatedAt.UTC(),
		lifecycle:  s.Lifecycle,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setServices(s.Services),
		o.setWeight(s.Weight),
		validateTimestamp("created at", s.CreatedAt),
		s.Lifecycle.Validate(),
		validateLockerPair(s.LockerID, s.LockerCode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Services() string {
	return o.services
}

func (o *Order) Weight() float64 {
	return o.weight
}

func (o *Order) PaymentID() *kernel.UUID {
	return o.paymentID
}

func (o *Order) LockerID() *kernel.ID {
	return o.lockerID
}

func (o *Order) LockerCode() *locker.AccessCode {
	return o.lockerCode
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Lifecycle() deletion.Lifecycle {
	return o.lifecycle
}

// IsOwnedBy reports whether customerID placed this order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// IsNewerThan orders by creation time, then by identifier, both descending.
func (o *Order) IsNewerThan(other *Order) bool {
	if other == nil {
		return true
	}
	if !o.createdAt.Equal(other.createdAt) {
		return o.createdAt.After(other.createdAt)
	}
	return o.id.String() > other.id.String()
}

// Apply merges the non-nil fields of p.
func (o *Order) Apply(p Patch, now time.Time) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("at least one of services, weight")
	}

	services, weight := o.services, o.weight
	if p.Services != nil {
		services = *p.Services
	}
	if p.Weight != nil {
		weight = *p.Weight
	}

	services, servicesErr := normalizeServices(services)
	if err := errors.Join(servicesErr, validateWeight(weight)); err != nil {
		return err
	}

	o.services = services
	o.weight = weight
	o.touch(now)
	return nil
}

// AssignLocker records the booked locker and the code handed to the customer.
// A later booking replaces an earlier assignment.
func (o *Order) AssignLocker(lockerID kernel.ID, code locker.AccessCode, now time.Time) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := errors.Join(lockerID.Validate(), code.Validate()); err != nil {
		return err
	}

	o.lockerID = &lockerID
	o.lockerCode = &code
	o.touch(now)
	return nil
}

// LinkPayment attaches a captured payment.
func (o *Order) LinkPayment(paymentID kernel.UUID, now time.Time) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if err := paymentID.Validate(); err != nil {
		return err
	}

	o.paymentID = &paymentID
	o.touch(now)
	return nil
}

// RequestDeletion moves the order to DeletionRequested.
func (o *Order) RequestDeletion(now time.Time) error {
	next, err := o.lifecycle.Request()
	if err != nil {
		return err
	}
	o.lifecycle = next
	o.touch(now)
	return nil
}

// FinalizeDeletion tombstones the order.
func (o *Order) FinalizeDeletion(now time.Time) error {
	next, err := o.lifecycle.Finalize()
	if err != nil {
		return err
	}
	o.lifecycle = next
	o.touch(now)
	return nil
}

func (o *Order) ensureMutable() error {
	if o.lifecycle == deletion.Deleted {
		return errs.NewConflictError(fmt.Sprintf("order %s is deleted", o.id))
	}
	return nil
}

func (o *Order) touch(now time.Time) {
	if !now.IsZero() {
		o.updatedAt = now.UTC()
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setServices(services string) error {
	services, err := normalizeServices(services)
	if err != nil {
		return err
	}
	o.services = services
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if err := validateWeight(weight); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func normalizeServices(services string) (string, error) {
	services = strings.TrimSpace(services)
	if services == "" {
		return "", errs.NewValueIsRequiredError("services")
	}
	return services, nil
}

// validateWeight requires a positive weight.
func validateWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%g is not greater than 0", weight))
	}
	return nil
}

func validateTimestamp(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateLockerPair(lockerID *kernel.ID, code *locker.AccessCode) error {
	if (lockerID == nil) != (code == nil) {
		return errs.NewValueIsInvalidError("locker and locker code must be set together")
	}
	if lockerID == nil {
		return nil
	}
	return errors.Join(lockerID.Validate(), code.Validate())
}
