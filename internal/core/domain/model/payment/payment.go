package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records money captured from a customer through the payment gateway.
type Payment struct {
	id          kernel.UUID
	customerID  kernel.UUID
	amount      float64
	currency    string
	paymentDate time.Time

	// status and chargeID come from the gateway
	status   string
	chargeID string

	createdAt time.Time
	updatedAt time.Time
	lifecycle deletion.Lifecycle

	guard guard.ConstructorGuard
}

// State is the persisted form of a payment, used by RestorePayment.
type State struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Amount      float64
	Currency    string
	PaymentDate time.Time
	Status      string
	ChargeID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Lifecycle   deletion.Lifecycle
}

// NewPayment records a completed capture.
func NewPayment(
	id, customerID kernel.UUID,
	amount float64,
	currency, chargeID, status string,
	now time.Time,
) (*Payment, error) {
	return RestorePayment(State{
		ID:          id,
		CustomerID:  customerID,
		Amount:      amount,
		Currency:    currency,
		PaymentDate: now,
		Status:      status,
		ChargeID:    chargeID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Lifecycle:   deletion.Active,
	})
}

// RestorePayment rebuilds a payment from storage.
func RestorePayment(s State) (*Payment, error) {
	if err := errors.Join(
		validateID("payment", s.ID),
		validateID("customer", s.CustomerID),
		ValidateAmount(s.Amount),
		validateRequired("currency", s.Currency),
		validateRequired("charge id", s.ChargeID),
		validateRequired("status", s.Status),
		validateTime("payment date", s.PaymentDate),
		validateTime("created at", s.CreatedAt),
		s.Lifecycle.Validate(),
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:          s.ID,
		customerID:  s.CustomerID,
		amount:      s.Amount,
		currency:    strings.ToUpper(strings.TrimSpace(s.Currency)),
		paymentDate: s.PaymentDate.UTC(),
		status:      strings.TrimSpace(s.Status),
		chargeID:    strings.TrimSpace(s.ChargeID),
		createdAt:   s.CreatedAt.UTC(),
		updatedAt:   s.UpdatedAt.UTC(),
		lifecycle:   s.Lifecycle,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

func (p *Payment) Amount() float64 {
	return p.amount
}

func (p *Payment) Currency() string {
	return p.currency
}

func (p *Payment) PaymentDate() time.Time {
	return p.paymentDate
}

func (p *Payment) Status() string {
	return p.status
}

func (p *Payment) ChargeID() string {
	return p.chargeID
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Payment) Lifecycle() deletion.Lifecycle {
	return p.lifecycle
}

func (p *Payment) IsOwnedBy(customerID kernel.UUID) bool {
	return p.customerID.IsEqual(customerID)
}

// Apply merges the non-nil fields of patch.
func (p *Payment) Apply(patch Patch, now time.Time) error {
	if p.lifecycle == deletion.Deleted {
		return errs.NewConflictError(fmt.Sprintf("payment %s is deleted", p.id))
	}
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("at least one of amount, payment date")
	}

	amount, date := p.amount, p.paymentDate
	if patch.Amount != nil {
		amount = *patch.Amount
	}
	if patch.PaymentDate != nil {
		date = *patch.PaymentDate
	}

	if err := errors.Join(ValidateAmount(amount), validateTime("payment date", date)); err != nil {
		return err
	}

	p.amount = amount
	p.paymentDate = date.UTC()
	p.updatedAt = now.UTC()
	return nil
}

func (p *Payment) RequestDeletion(now time.Time) error {
	next, err := p.lifecycle.Request()
	if err != nil {
		return err
	}
	p.lifecycle = next
	p.updatedAt = now.UTC()
	return nil
}

func (p *Payment) FinalizeDeletion(now time.Time) error {
	next, err := p.lifecycle.Finalize()
	if err != nil {
		return err
	}
	p.lifecycle = next
	p.updatedAt = now.UTC()
	return nil
}

// ValidateAmount requires a strictly positive amount.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%g is not greater than 0", amount))
	}
	return nil
}

func validateID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func validateRequired(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
