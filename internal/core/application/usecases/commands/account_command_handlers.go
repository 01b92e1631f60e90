package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"
)

const invalidLoginReason = "invalid email or password"

// RegisterCustomerCommandHandler creates a customer account. Anyone may register.
type RegisterCustomerCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	clock      func() time.Time
}

func NewRegisterCustomerCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	clock func() time.Time,
) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{uowFactory: uowFactory, hasher: hasher, clock: clock}
}

// Handle returns Conflict when the e-mail or phone is already registered.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	acc, err := account.NewAccount(
		kernel.NewUUID(), auth.Customer, cmd.Name(), cmd.Email(), cmd.Phone(), hash, nil, h.clock(),
	)
	if err != nil {
		return nil, err
	}

	return acc, addAccount(ctx, h.uowFactory.Create(), acc)
}

// LoginCommandHandler exchanges credentials for a bearer token. Every mismatch
// reports the same Unauthenticated reason.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, hasher: hasher, issuer: issuer}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	acc, err := h.uowFactory.Create().AccountRepository().GetByEmail(ctx, cmd.Role(), cmd.Email())
	if errs.KindOf(err) == errs.KindNotFound {
		return "", errs.NewUnauthenticatedError(invalidLoginReason)
	}
	if err != nil {
		return "", err
	}

	if !acc.CanAuthenticate() {
		return "", errs.NewUnauthenticatedError(invalidLoginReason)
	}

	if err = h.hasher.Compare(acc.PasswordHash(), cmd.Password()); err != nil {
		return "", errs.NewUnauthenticatedErrorWithCause(invalidLoginReason, err)
	}

	return h.issuer.Issue(acc)
}

// RequestAccountDeletionCommandHandler lets a customer or courier ask for their own
// account to be deleted.
type RequestAccountDeletionCommandHandler struct {
	uowFactory AccountUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewRequestAccountDeletionCommandHandler(
	uowFactory AccountUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) RequestAccountDeletionCommandHandler {
	return RequestAccountDeletionCommandHandler{uowFactory: uowFactory, authorizer: authorizer, clock: clock}
}

func (h RequestAccountDeletionCommandHandler) Handle(ctx context.Context, principal auth.Principal) error {
	if err := h.authorizer.Authorize(principal, auth.RequestAccountDeletion); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	acc, err := accountRepo.Get(ctx, principal.Role(), principal.ID())
	if err != nil {
		return err
	}

	kind, err := acc.SubjectKind()
	if err != nil {
		return err
	}

	if err = acc.RequestDeletion(); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	if err = openDeletionRequest(ctx, uow.DeletionRequestRepository(), kind, acc.ID(), principal.ID(), h.clock()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// FinalizeAccountDeletionCommandHandler tombstones a customer or courier account.
type FinalizeAccountDeletionCommandHandler struct {
	uowFactory AccountUoWFactory
	authorizer services.Authorizer
	clock      func() time.Time
}

func NewFinalizeAccountDeletionCommandHandler(
	uowFactory AccountUoWFactory,
	authorizer services.Authorizer,
	clock func() time.Time,
) FinalizeAccountDeletionCommandHandler {
	return FinalizeAccountDeletionCommandHandler{uowFactory: uowFactory, authorizer: authorizer, clock: clock}
}

func (h FinalizeAccountDeletionCommandHandler) Handle(ctx context.Context, cmd AccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.FinalizeAccountDeletion); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	acc, err := accountRepo.Get(ctx, cmd.Role(), cmd.AccountID())
	if err != nil {
		return err
	}

	kind, err := acc.SubjectKind()
	if err != nil {
		return err
	}

	if err = acc.FinalizeDeletion(); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	if err = closeDeletionRequest(ctx, uow.DeletionRequestRepository(), kind, acc.ID(), principal.ID(), h.clock()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteStaffAccountCommandHandler removes a laundromat or admin account at once.
// An administrator cannot remove their own account.
type DeleteStaffAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	authorizer services.Authorizer
}

func NewDeleteStaffAccountCommandHandler(
	uowFactory AccountUoWFactory,
	authorizer services.Authorizer,
) DeleteStaffAccountCommandHandler {
	return DeleteStaffAccountCommandHandler{uowFactory: uowFactory, authorizer: authorizer}
}

func (h DeleteStaffAccountCommandHandler) Handle(ctx context.Context, cmd AccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()
	if err := h.authorizer.Authorize(principal, auth.DeleteStaffAccount); err != nil {
		return err
	}

	if !cmd.Role().IsStaff() {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%s accounts go through a deletion request", cmd.Role()))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	if _, err := accountRepo.Get(ctx, cmd.Role(), cmd.AccountID()); err != nil {
		return err
	}

	if cmd.Role() == principal.Role() && cmd.AccountID() == principal.ID() {
		return errs.NewConflictError("an administrator cannot delete their own account")
	}

	if err := accountRepo.Delete(ctx, cmd.Role(), cmd.AccountID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// BootstrapAdmin seeds the first administrator account when none exists.
type BootstrapAdmin struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	clock      func() time.Time
	logger     *slog.Logger
}

func NewBootstrapAdmin(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	clock func() time.Time,
	logger *slog.Logger,
) BootstrapAdmin {
	return BootstrapAdmin{uowFactory: uowFactory, hasher: hasher, clock: clock, logger: logger}
}

// Run returns the seeded account, or nil when an administrator already exists.
func (b BootstrapAdmin) Run(ctx context.Context, name, email, phone, password string) (*account.Account, error) {
	uow := b.uowFactory.Create()

	count, err := uow.AccountRepository().CountByRole(ctx, auth.Admin)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	if password == "" {
		return nil, errs.NewValueIsRequiredError("bootstrap admin password")
	}

	hash, err := b.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	acc, err := account.NewAccount(kernel.NewUUID(), auth.Admin, name, email, phone, hash, nil, b.clock())
	if err != nil {
		return nil, err
	}

	if err = addAccount(ctx, uow, acc); err != nil {
		return nil, err
	}

	b.logger.Info("bootstrap administrator created", "account_id", acc.ID().String(), "email", acc.Email())
	return acc, nil
}

// addAccount rejects a taken e-mail before insert. Unique indexes still catch
// duplicate phones and races.
func addAccount(ctx context.Context, uow AccountUoW, acc *account.Account) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err := accountRepo.GetByEmail(ctx, acc.Role(), acc.Email())
	switch {
	case err == nil:
		return errs.NewConflictError(fmt.Sprintf("%s e-mail %s is already registered", acc.Role(), acc.Email()))
	case errs.KindOf(err) != errs.KindNotFound:
		return err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
