package commands_test

import (
	"errors"
	"testing"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("stores a hashed customer account", func(t *testing.T) {
		ctx := t.Context()
		factory := new(MockUoWFactory)
		uow := new(MockUoW)
		accountRepo := new(MockAccountRepository)
		hasher := new(MockPasswordHasher)

		hasher.On("Hash", "s3cret-pass").Return("$2a$hashed", nil).Once()
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("AccountRepository").Return(accountRepo).Once(),
			accountRepo.On("GetByEmail", ctx, auth.Customer, "ada@example.com").
				Return(nil, errs.NewObjectNotFoundError("account", "ada@example.com")).Once(),
			accountRepo.On("Add", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewRegisterCustomerCommand("Ada", " Ada@Example.com ", "+15550100", "s3cret-pass")
		require.NoError(t, err)

		acc, err := commands.NewRegisterCustomerCommandHandler(accountFactory{factory}, hasher, testClock).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, auth.Customer, acc.Role())
		assert.Equal(t, "ada@example.com", acc.Email())
		assert.Equal(t, "$2a$hashed", acc.PasswordHash())
		accountRepo.AssertExpectations(t)
	})

	t.Run("rejects a registered e-mail", func(t *testing.T) {
		ctx := t.Context()
		factory := new(MockUoWFactory)
		uow := new(MockUoW)
		accountRepo := new(MockAccountRepository)
		hasher := new(MockPasswordHasher)

		hasher.On("Hash", "s3cret-pass").Return("$2a$hashed", nil).Once()
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(accountRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		accountRepo.On("GetByEmail", ctx, auth.Customer, "ada@example.com").
			Return(newCustomerAccount(t, kernel.NewUUID()), nil).Once()

		cmd, err := commands.NewRegisterCustomerCommand("Ada", "ada@example.com", "+15550100", "s3cret-pass")
		require.NoError(t, err)

		_, err = commands.NewRegisterCustomerCommandHandler(accountFactory{factory}, hasher, testClock).Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	active := newCustomerAccount(t, kernel.NewUUID())

	deleted, err := account.RestoreAccount(account.State{
		ID:           kernel.NewUUID(),
		Role:         auth.Customer,
		Name:         "Gone",
		Email:        "gone@example.com",
		Phone:        "+15550199",
		PasswordHash: "hash",
		CreatedAt:    testNow,
		Lifecycle:    deletion.Deleted,
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		email     string
		found     *account.Account
		lookupErr error
		compare   error
		wantToken string
		wantKind  errs.Kind
	}{
		{name: "valid credentials", email: "ada@example.com", found: active, wantToken: "signed-token"},
		{
			name: "unknown e-mail", email: "nobody@example.com",
			lookupErr: errs.NewObjectNotFoundError("account", "nobody@example.com"), wantKind: errs.KindUnauthenticated,
		},
		{
			name: "wrong password", email: "ada@example.com", found: active,
			compare: errors.New("mismatch"), wantKind: errs.KindUnauthenticated,
		},
		{name: "deleted account", email: "gone@example.com", found: deleted, wantKind: errs.KindUnauthenticated},
		{
			name: "storage down", email: "ada@example.com",
			lookupErr: errs.NewUnavailableError("database", nil), wantKind: errs.KindUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			factory := new(MockUoWFactory)
			uow := new(MockUoW)
			accountRepo := new(MockAccountRepository)
			hasher := new(MockPasswordHasher)
			issuer := new(MockTokenIssuer)

			factory.On("Create").Return(uow).Once()
			uow.On("AccountRepository").Return(accountRepo).Once()
			if tt.found != nil {
				accountRepo.On("GetByEmail", ctx, auth.Customer, tt.email).Return(tt.found, nil).Once()
			} else {
				accountRepo.On("GetByEmail", ctx, auth.Customer, tt.email).Return(nil, tt.lookupErr).Once()
			}
			hasher.On("Compare", "hash", "s3cret-pass").Return(tt.compare).Maybe()
			issuer.On("Issue", active).Return("signed-token", nil).Maybe()

			cmd, err := commands.NewLoginCommand("Customer", tt.email, "s3cret-pass")
			require.NoError(t, err)

			token, err := commands.NewLoginCommandHandler(accountFactory{factory}, hasher, issuer).Handle(ctx, cmd)

			if tt.wantToken != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, errs.KindOf(err))
			assert.Empty(t, token)
			issuer.AssertNotCalled(t, "Issue", mock.Anything)
		})
	}
}

func TestRequestAccountDeletionCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customer := newPrincipal(t, auth.Customer)
	acc := newCustomerAccount(t, customer.ID())

	factory := new(MockUoWFactory)
	uow := new(MockUoW)
	accountRepo := new(MockAccountRepository)
	requestRepo := new(MockDeletionRequestRepository)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, auth.Customer, customer.ID()).Return(acc, nil).Once(),
		accountRepo.On("Update", ctx, acc).Return(nil).Once(),
		uow.On("DeletionRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Add", ctx, mock.MatchedBy(func(r *deletion.Request) bool {
			return r.Kind() == deletion.SubjectCustomer && r.SubjectID() == customer.ID() && !r.IsProcessed()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRequestAccountDeletionCommandHandler(accountFactory{factory}, testAuthorizer(), testClock)
	err := handler.Handle(ctx, customer)

	require.NoError(t, err)
	assert.Equal(t, deletion.DeletionRequested, acc.Lifecycle())
	requestRepo.AssertExpectations(t)
}

func TestDeleteStaffAccountCommandHandler_Handle(t *testing.T) {
	t.Run("admin cannot delete itself", func(t *testing.T) {
		ctx := t.Context()
		admin := newPrincipal(t, auth.Admin)
		self, err := account.NewAccount(admin.ID(), auth.Admin, "Root", "root@example.com", "+15550000", "hash", nil, testNow)
		require.NoError(t, err)

		factory := new(MockUoWFactory)
		uow := new(MockUoW)
		accountRepo := new(MockAccountRepository)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(accountRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		accountRepo.On("Get", ctx, auth.Admin, admin.ID()).Return(self, nil).Once()

		cmd, err := commands.NewAccountCommand(admin, auth.Admin, admin.ID())
		require.NoError(t, err)

		err = commands.NewDeleteStaffAccountCommandHandler(accountFactory{factory}, testAuthorizer()).Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		accountRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("customers go through a deletion request", func(t *testing.T) {
		factory := new(MockUoWFactory)
		cmd, err := commands.NewAccountCommand(newPrincipal(t, auth.Admin), auth.Customer, kernel.NewUUID())
		require.NoError(t, err)

		err = commands.NewDeleteStaffAccountCommandHandler(accountFactory{factory}, testAuthorizer()).Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("laundromats may not delete staff", func(t *testing.T) {
		factory := new(MockUoWFactory)
		cmd, err := commands.NewAccountCommand(newPrincipal(t, auth.Laundromat), auth.Laundromat, kernel.NewUUID())
		require.NoError(t, err)

		err = commands.NewDeleteStaffAccountCommandHandler(accountFactory{factory}, testAuthorizer()).Handle(t.Context(), cmd)

		assert.Equal(t, errs.KindUnauthorized, errs.KindOf(err))
	})
}

func TestBootstrapAdmin_Run_SkipsWhenAdminExists(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)
	uow := new(MockUoW)
	accountRepo := new(MockAccountRepository)
	hasher := new(MockPasswordHasher)

	factory.On("Create").Return(uow).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	accountRepo.On("CountByRole", ctx, auth.Admin).Return(int64(1), nil).Once()

	acc, err := commands.NewBootstrapAdmin(accountFactory{factory}, hasher, testClock, testLogger()).
		Run(ctx, "Administrator", "admin@example.com", "+15550000", "change-me")

	require.NoError(t, err)
	assert.Nil(t, acc)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}
