package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func testClock() time.Time {
	return testNow
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAuthorizer() services.Authorizer {
	return services.NewAuthorizer(auth.DefaultCapabilities())
}

func newPrincipal(t *testing.T, role auth.Role) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(role, kernel.NewUUID())
	require.NoError(t, err)
	return p
}

func accessCode(t *testing.T, value string) *locker.AccessCode {
	t.Helper()
	code, err := locker.NewAccessCode(value)
	require.NoError(t, err)
	return &code
}

func restoreLocker(t *testing.T, id kernel.ID, status locker.Status, code, issued *locker.AccessCode) *locker.Locker {
	t.Helper()
	l, err := locker.RestoreLocker(id, "L-100", "Building A, ground floor", locker.Medium, status, code, issued)
	require.NoError(t, err)
	return l
}

func newOrder(t *testing.T, customerID kernel.UUID, at time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, "wash and fold", 4.5, at)
	require.NoError(t, err)
	return o
}

func newCustomerAccount(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(id, auth.Customer, "Ada", "ada@example.com", "+15550100", "hash", nil, testNow)
	require.NoError(t, err)
	return acc
}

type fixedCodes struct {
	code string
	err  error
}

func (f fixedCodes) Generate() (locker.AccessCode, error) {
	if f.err != nil {
		return locker.AccessCode{}, f.err
	}
	return locker.NewAccessCode(f.code)
}

type MockLockerRepository struct{ mock.Mock }

func (m *MockLockerRepository) Add(ctx context.Context, l *locker.Locker) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLockerRepository) Get(ctx context.Context, id kernel.ID) (*locker.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

func (m *MockLockerRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*locker.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

func (m *MockLockerRepository) UpdateIfStatus(ctx context.Context, l *locker.Locker, expected locker.Status) error {
	args := m.Called(ctx, l, expected)
	return args.Error(0)
}

func (m *MockLockerRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLockerRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockLockerRepository) List(ctx context.Context, filter ports.LockerFilter) ([]*locker.Locker, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Locker), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListVisibleForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, role auth.Role, id kernel.UUID) error {
	args := m.Called(ctx, role, id)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, role auth.Role, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, role, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, role auth.Role, email string) (*account.Account, error) {
	args := m.Called(ctx, role, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) CountByRole(ctx context.Context, role auth.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockDeletionRequestRepository struct{ mock.Mock }

func (m *MockDeletionRequestRepository) Add(ctx context.Context, r *deletion.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeletionRequestRepository) Update(ctx context.Context, r *deletion.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeletionRequestRepository) FindBySubject(
	ctx context.Context,
	kind deletion.SubjectKind,
	subjectID kernel.UUID,
) (*deletion.Request, error) {
	args := m.Called(ctx, kind, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deletion.Request), args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LockerRepository() ports.LockerRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) DeletionRequestRepository() ports.DeletionRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeletionRequestRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) next() *MockUoW {
	args := m.MethodCalled("Create")
	return args.Get(0).(*MockUoW)
}

// The handlers each take a differently typed factory; these views share one mock.
type (
	lockerFactory  struct{ *MockUoWFactory }
	bookingFactory struct{ *MockUoWFactory }
	orderFactory   struct{ *MockUoWFactory }
	paymentFactory struct{ *MockUoWFactory }
	accountFactory struct{ *MockUoWFactory }
)

func (f lockerFactory) Create() commands.LockerUoW {
	return f.next()
}

func (f bookingFactory) Create() commands.BookingUoW {
	return f.next()
}

func (f orderFactory) Create() commands.OrderUoW {
	return f.next()
}

func (f paymentFactory) Create() commands.PaymentUoW {
	return f.next()
}

func (f accountFactory) Create() commands.AccountUoW {
	return f.next()
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyAccessCode(ctx context.Context, notice ports.AccessCodeNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Capture(ctx context.Context, req ports.CaptureRequest) (ports.CaptureResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.CaptureResult), args.Error(1)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, plain string) error {
	args := m.Called(hash, plain)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(acc *account.Account) (string, error) {
	args := m.Called(acc)
	return args.String(0), args.Error(1)
}
