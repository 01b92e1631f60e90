package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "lockers/internal/adapters/out/postgres"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real PostgreSQL,
// where SELECT ... FOR UPDATE actually blocks competing transactions.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE lockers, orders, payments, accounts, deletion_requests RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsLockerAndOrder() {
	ctx := context.Background()
	l := suite.addLocker("L-1")
	o := suite.addOrder(kernel.NewUUID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.LockerRepository().GetForUpdate(ctx, l.ID())
	suite.Require().NoError(err)
	code, err := locker.NewAccessCode("123456")
	suite.Require().NoError(err)
	suite.Require().NoError(locked.Book(code))
	suite.Require().NoError(uow.LockerRepository().UpdateIfStatus(ctx, locked, locker.Available))
	suite.Require().NoError(o.AssignLocker(l.ID(), code, time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	stored, err := reader.LockerRepository().Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(locker.Available, stored.Status())
	suite.Nil(stored.Code())

	storedOrder, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(storedOrder.LockerID())
}

// TestUnitOfWork_ConcurrentBooking races two transactions for one locker.
// Exactly one may win; the other must observe the booked locker and fail with Conflict.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentBooking() {
	ctx := context.Background()
	l := suite.addLocker("L-100")

	book := func(code string) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		locked, err := uow.LockerRepository().GetForUpdate(ctx, l.ID())
		if err != nil {
			return err
		}
		accessCode, err := locker.NewAccessCode(code)
		if err != nil {
			return err
		}
		if err = locked.Book(accessCode); err != nil {
			return err
		}
		// widen the race window while holding the row lock
		time.Sleep(50 * time.Millisecond)
		if err = uow.LockerRepository().UpdateIfStatus(ctx, locked, locker.Available); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, code := range []string{"111111", "222222"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = book(code)
		}()
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errs.KindOf(err) == errs.KindConflict:
			conflicts++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, successes)
	suite.Equal(1, conflicts)

	stored, err := suite.factory.Create().LockerRepository().Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(locker.Occupied, stored.Status())
	suite.NotNil(stored.Code())
}

func (suite *UnitOfWorkIntegrationTestSuite) addLocker(number string) *locker.Locker {
	l, err := locker.NewLocker(number, "Lobby", locker.Medium)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().LockerRepository().Add(context.Background(), l))
	return l
}

func (suite *UnitOfWorkIntegrationTestSuite) addOrder(customerID kernel.UUID) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customerID, "wash", 2, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
