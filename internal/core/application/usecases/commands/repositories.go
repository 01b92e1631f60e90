// Package commands contains business operations that modify system state.
// Every command is built through its constructor, authorized against the caller's
// role, and executed inside one unit of work: Begin, deferred Rollback, repository
// calls, Commit.
package commands

import (
	"context"

	"lockers/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	LockerRepoFactory interface {
		LockerRepository() ports.LockerRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	DeletionRequestRepoFactory interface {
		DeletionRequestRepository() ports.DeletionRequestRepository
	}

	// LockerUoW covers locker registry and lock/unlock operations.
	LockerUoW interface {
		TxManager
		LockerRepoFactory
	}

	LockerUoWFactory interface {
		Create() LockerUoW
	}

	// BookingUoW spans the locker row, the customer's orders and the customer account.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   l, err := uow.LockerRepository().GetForUpdate(ctx, lockerID)
	//   orders, err := uow.OrderRepository().ListVisibleForCustomer(ctx, customerID)
	//   // ... book, then persist both
	//
	//   err = uow.Commit(ctx)
	BookingUoW interface {
		TxManager
		LockerRepoFactory
		OrderRepoFactory
		AccountRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// OrderUoW covers order writes, their deletion requests, and the locker check
	// that guards final deletion.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		LockerRepoFactory
		DeletionRequestRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW covers payments and the order a capture is linked into.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
		DeletionRequestRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// AccountUoW covers accounts and their deletion requests.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
		DeletionRequestRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
