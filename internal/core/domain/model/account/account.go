package account

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is a registered customer, courier, laundromat or administrator.
//
// Invariants:
//   - E-mail is a valid address, stored lower-cased
//   - Couriers carry a vehicle registration; other roles do not
//   - Only customer and courier accounts go through a deletion request
type Account struct {
	id           kernel.UUID
	role         auth.Role
	name         string
	email        string
	phone        string
	passwordHash string
	vehicle      *string
	createdAt    time.Time
	lifecycle    deletion.Lifecycle

	guard guard.ConstructorGuard
}

// State is the persisted form of an account.
type State struct {
	ID           kernel.UUID
	Role         auth.Role
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Vehicle      *string
	CreatedAt    time.Time
	Lifecycle    deletion.Lifecycle
}

// NewAccount registers an active account. passwordHash must already be hashed.
func NewAccount(
	id kernel.UUID,
	role auth.Role,
	name, email, phone, passwordHash string,
	vehicle *string,
	now time.Time,
) (*Account, error) {
	return RestoreAccount(State{
		ID:           id,
		Role:         role,
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Vehicle:      vehicle,
		CreatedAt:    now,
		Lifecycle:    deletion.Active,
	})
}

// RestoreAccount rebuilds an account from storage.
func RestoreAccount(s State) (*Account, error) {
	email, emailErr := normalizeEmail(s.Email)

	if err := errors.Join(
		s.ID.Validate(),
		s.Role.Validate(),
		required("name", s.Name),
		emailErr,
		required("phone", s.Phone),
		required("password hash", s.PasswordHash),
		validateVehicle(s.Role, s.Vehicle),
		s.Lifecycle.Validate(),
	); err != nil {
		return nil, err
	}

	var vehicle *string
	if s.Vehicle != nil {
		v := strings.TrimSpace(*s.Vehicle)
		vehicle = &v
	}

	return &Account{
		id:           s.ID,
		role:         s.Role,
		name:         strings.TrimSpace(s.Name),
		email:        email,
		phone:        strings.TrimSpace(s.Phone),
		passwordHash: s.PasswordHash,
		vehicle:      vehicle,
		createdAt:    s.CreatedAt.UTC(),
		lifecycle:    s.Lifecycle,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Role() auth.Role {
	return a.role
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) Phone() string {
	return a.phone
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Vehicle() *string {
	return a.vehicle
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) Lifecycle() deletion.Lifecycle {
	return a.lifecycle
}

// CanAuthenticate reports whether the account may still obtain and use tokens.
func (a *Account) CanAuthenticate() bool {
	return a.lifecycle.IsVisible()
}

// SubjectKind maps the account role onto the deletion request subject.
func (a *Account) SubjectKind() (deletion.SubjectKind, error) {
	switch a.role {
	case auth.Customer:
		return deletion.SubjectCustomer, nil
	case auth.Courier:
		return deletion.SubjectCourier, nil
	default:
		return "", errs.NewConflictError(fmt.Sprintf("%s accounts are removed directly", a.role))
	}
}

// RequestDeletion is available to customers and couriers only.
func (a *Account) RequestDeletion() error {
	if _, err := a.SubjectKind(); err != nil {
		return err
	}
	next, err := a.lifecycle.Request()
	if err != nil {
		return err
	}
	a.lifecycle = next
	return nil
}

func (a *Account) FinalizeDeletion() error {
	next, err := a.lifecycle.Finalize()
	if err != nil {
		return err
	}
	a.lifecycle = next
	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an address", email))
	}
	return email, nil
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateVehicle(role auth.Role, vehicle *string) error {
	has := vehicle != nil && strings.TrimSpace(*vehicle) != ""
	switch {
	case role == auth.Courier && !has:
		return errs.NewValueIsRequiredError("vehicle registration")
	case role != auth.Courier && vehicle != nil:
		return errs.NewValueIsInvalidError("vehicle registration is only kept for couriers")
	default:
		return nil
	}
}
