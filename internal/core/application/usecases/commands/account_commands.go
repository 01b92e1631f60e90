package commands

import (
	"errors"
	"strings"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrAccountCommandIsNotConstructed = errors.New(
		"AccountCommand must be created via NewAccountCommand constructor",
	)
)

// RegisterCustomerCommand is the public sign-up request.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	phone    string
	password string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(name, email, phone, password string) (RegisterCustomerCommand, error) {
	if password == "" {
		return RegisterCustomerCommand{}, errs.NewValueIsRequiredError("password")
	}

	return RegisterCustomerCommand{
		name:     name,
		email:    email,
		phone:    phone,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c RegisterCustomerCommand) Email() string {
	return c.email
}

func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

func (c RegisterCustomerCommand) Password() string {
	return c.password
}

type LoginCommand struct { //nolint:recvcheck //using for validation
	role     auth.Role
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(role, email, password string) (LoginCommand, error) {
	r, err := auth.RoleFromString(role)
	if err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		role:     r,
		email:    strings.ToLower(strings.TrimSpace(email)),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Role() auth.Role {
	return c.role
}

func (c LoginCommand) Email() string {
	return c.email
}

func (c LoginCommand) Password() string {
	return c.password
}

// AccountCommand targets the account of the given role and id. It drives
// finalizing a customer or courier deletion and removing a staff account.
type AccountCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	role      auth.Role
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAccountCommand(principal auth.Principal, role auth.Role, accountID kernel.UUID) (AccountCommand, error) {
	if err := errors.Join(role.Validate(), accountID.Validate()); err != nil {
		return AccountCommand{}, err
	}

	return AccountCommand{
		principal: principal,
		role:      role,
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AccountCommand) Validate() error {
	return c.guard.Validate(ErrAccountCommandIsNotConstructed)
}

func (c AccountCommand) Principal() auth.Principal {
	return c.principal
}

func (c AccountCommand) Role() auth.Role {
	return c.role
}

func (c AccountCommand) AccountID() kernel.UUID {
	return c.accountID
}
