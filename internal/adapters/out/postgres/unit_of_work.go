// Package postgres provides the GORM-based Unit of Work for the locker service.
// A unit of work owns one database transaction and hands out repositories bound
// to it, so a booking can lock the locker row, update it and the order, and
// commit or roll back everything at once.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	l, err := uow.LockerRepository().GetForUpdate(ctx, id)
//	// ... mutate and persist
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance must be used by a single goroutine.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"lockers/internal/adapters/out/postgres/accountrepo"
	"lockers/internal/adapters/out/postgres/dberr"
	"lockers/internal/adapters/out/postgres/deletionrepo"
	"lockers/internal/adapters/out/postgres/lockerrepo"
	"lockers/internal/adapters/out/postgres/orderrepo"
	"lockers/internal/adapters/out/postgres/paymentrepo"
	"lockers/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        fmt.Stringer
	Aggregate any
}

// invariantChecker is implemented by aggregates whose cross-field rules must hold
// at commit time.
type invariantChecker interface {
	CheckInvariants() error
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return dberr.Translate(tx.Error, "transaction", "begin")
	}

	uow.tx = tx
	return nil
}

// Commit verifies the invariants of every tracked aggregate and commits.
// A broken invariant rolls the transaction back and is returned as is.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.checkInvariants(); err != nil {
		rollbackErr := uow.tx.Rollback().Error
		uow.tx = nil
		return errors.Join(err, rollbackErr)
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return dberr.Translate(err, "transaction", "commit")
	}
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when there is nothing to roll back, which
// callers ignore in their deferred cleanup after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) LockerRepository() ports.LockerRepository {
	return lockerrepo.NewGormLockerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeletionRequestRepository() ports.DeletionRequestRepository {
	return deletionrepo.NewGormRequestRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id fmt.Stringer, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the transaction when one is open, otherwise the main connection.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) checkInvariants() error {
	for _, tracked := range uow.trackedAggregates {
		checker, ok := tracked.Aggregate.(invariantChecker)
		if !ok {
			continue
		}
		if err := checker.CheckInvariants(); err != nil {
			return fmt.Errorf("aggregate %s: %w", tracked.ID, err)
		}
	}
	return nil
}
