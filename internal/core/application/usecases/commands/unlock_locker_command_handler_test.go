package commands_test

import (
	"errors"
	"testing"
	"time"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUnlockHandler(
	factory *MockUoWFactory,
	limiter *services.AttemptLimiter,
	publisher *MockEventPublisher,
) commands.UnlockLockerCommandHandler {
	announcer := commands.NewAnnouncer(nil, publisher, testClock, testLogger())
	return commands.NewUnlockLockerCommandHandler(lockerFactory{factory}, testAuthorizer(), limiter, announcer, testLogger())
}

func unlockCommand(t *testing.T, p auth.Principal, id kernel.ID, code string) commands.UnlockLockerCommand {
	t.Helper()
	cmd, err := commands.NewUnlockLockerCommand(p, id, code)
	require.NoError(t, err)
	return cmd
}

func TestUnlockLockerCommandHandler_Handle_IgnoresCase(t *testing.T) {
	ctx := t.Context()
	customer := newPrincipal(t, auth.Customer)
	l := restoreLocker(t, 7, locker.Occupied, accessCode(t, "a1b2c3"), accessCode(t, "a1b2c3"))

	factory := new(MockUoWFactory)
	uow := new(MockUoW)
	lockerRepo := new(MockLockerRepository)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		lockerRepo.On("GetForUpdate", ctx, kernel.ID(7)).Return(l, nil).Once(),
		lockerRepo.On("UpdateIfStatus", ctx, l, locker.Occupied).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
		return e.Type == ports.EventLockerUnlocked && e.Payload["status"] == "available"
	})).Return(nil).Once()

	handler := newUnlockHandler(factory, services.NewAttemptLimiter(5, time.Minute, time.Minute), publisher)
	err := handler.Handle(ctx, unlockCommand(t, customer, 7, "A1B2C3"))

	require.NoError(t, err)
	assert.Equal(t, locker.Available, l.Status())
	assert.Nil(t, l.Code())
	require.NotNil(t, l.IssuedCode())
	assert.Equal(t, "a1b2c3", l.IssuedCode().String())
	uow.AssertExpectations(t)
	lockerRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUnlockLockerCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	customer := newPrincipal(t, auth.Customer)
	l := restoreLocker(t, 7, locker.Occupied, accessCode(t, "482913"), accessCode(t, "482913"))

	factory := new(MockUoWFactory)
	uow := new(MockUoW)
	lockerRepo := new(MockLockerRepository)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		lockerRepo.On("GetForUpdate", ctx, kernel.ID(7)).Return(l, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newUnlockHandler(factory, services.NewAttemptLimiter(5, time.Minute, time.Minute), publisher)
	err := handler.Handle(ctx, unlockCommand(t, customer, 7, "000000"))

	require.Error(t, err)
	assert.Equal(t, errs.KindInvalidCredential, errs.KindOf(err))
	assert.Contains(t, err.Error(), "invalid code, try again")
	assert.Equal(t, locker.Occupied, l.Status())
	assert.Equal(t, "482913", l.Code().String())
	lockerRepo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUnlockLockerCommandHandler_Handle_LockedOutAfterRepeatedFailures(t *testing.T) {
	ctx := t.Context()
	customer := newPrincipal(t, auth.Customer)
	l := restoreLocker(t, 7, locker.Occupied, accessCode(t, "482913"), accessCode(t, "482913"))

	factory := new(MockUoWFactory)
	uow := new(MockUoW)
	lockerRepo := new(MockLockerRepository)
	publisher := new(MockEventPublisher)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("LockerRepository").Return(lockerRepo)
	uow.On("Rollback", ctx).Return(nil)
	lockerRepo.On("GetForUpdate", ctx, kernel.ID(7)).Return(l, nil)

	limiter := services.NewAttemptLimiter(2, time.Minute, 15*time.Minute)
	handler := newUnlockHandler(factory, limiter, publisher)

	for range 2 {
		err := handler.Handle(ctx, unlockCommand(t, customer, 7, "000000"))
		require.Equal(t, errs.KindInvalidCredential, errs.KindOf(err))
	}

	err := handler.Handle(ctx, unlockCommand(t, customer, 7, "482913"))

	require.Error(t, err)
	assert.Equal(t, errs.KindTooManyAttempts, errs.KindOf(err))
	assert.True(t, errors.Is(err, errs.ErrInvalidCredential))
	assert.Equal(t, locker.Occupied, l.Status())
	lockerRepo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlockLockerCommandHandler_Handle_NotOccupied(t *testing.T) {
	ctx := t.Context()
	customer := newPrincipal(t, auth.Customer)
	l := restoreLocker(t, 7, locker.Available, nil, nil)

	factory := new(MockUoWFactory)
	uow := new(MockUoW)
	lockerRepo := new(MockLockerRepository)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		lockerRepo.On("GetForUpdate", ctx, kernel.ID(7)).Return(l, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newUnlockHandler(factory, nil, new(MockEventPublisher))
	err := handler.Handle(ctx, unlockCommand(t, customer, 7, "482913"))

	require.Error(t, err)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	assert.Contains(t, err.Error(), "locker is not occupied")
}

func TestUnlockLockerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	customer := newPrincipal(t, auth.Customer)

	factory := new(MockUoWFactory)
	uow := new(MockUoW)
	lockerRepo := new(MockLockerRepository)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		lockerRepo.On("GetForUpdate", ctx, kernel.ID(99)).
			Return(nil, errs.NewObjectNotFoundError("locker", kernel.ID(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newUnlockHandler(factory, nil, new(MockEventPublisher))
	err := handler.Handle(ctx, unlockCommand(t, customer, 99, "482913"))

	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestUnlockLockerCommandHandler_Handle_Unauthorized(t *testing.T) {
	factory := new(MockUoWFactory)
	handler := newUnlockHandler(factory, nil, new(MockEventPublisher))

	err := handler.Handle(t.Context(), unlockCommand(t, newPrincipal(t, auth.Courier), 7, "482913"))

	require.Error(t, err)
	assert.Equal(t, errs.KindUnauthorized, errs.KindOf(err))
	factory.AssertNotCalled(t, "Create")
}

func TestNewUnlockLockerCommand(t *testing.T) {
	customer := newPrincipal(t, auth.Customer)

	t.Run("trims the code", func(t *testing.T) {
		cmd, err := commands.NewUnlockLockerCommand(customer, 7, "  482913 ")
		require.NoError(t, err)
		assert.Equal(t, "482913", cmd.Code())
		assert.Equal(t, kernel.ID(7), cmd.LockerID())
	})

	t.Run("requires a code", func(t *testing.T) {
		_, err := commands.NewUnlockLockerCommand(customer, 7, "   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a locker id", func(t *testing.T) {
		_, err := commands.NewUnlockLockerCommand(customer, 0, "482913")
		require.Error(t, err)
	})
}
