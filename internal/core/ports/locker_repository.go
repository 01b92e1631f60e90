// Package ports defines the contracts between the locker domain and infrastructure:
// repositories, the unit of work, and outbound collaborators such as notification,
// payment capture and event publishing.
package ports

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
)

// LockerFilter selects which lockers a listing returns.
type LockerFilter int

const (
	AllLockers LockerFilter = iota
	AvailableLockers
	OccupiedLockers
)

// LockerRepository defines the persistence contract for locker aggregates.
type LockerRepository interface {
	// Add persists a new locker and assigns its storage identity through Identify.
	// Returns a ConflictError when the number is already taken.
	Add(ctx context.Context, aggregate *locker.Locker) error

	// Get retrieves a locker without locking the row.
	Get(ctx context.Context, id kernel.ID) (*locker.Locker, error)

	// GetForUpdate retrieves a locker and holds a row lock until the transaction ends.
	// Must be called inside a started unit of work.
	GetForUpdate(ctx context.Context, id kernel.ID) (*locker.Locker, error)

	// UpdateIfStatus writes the locker only when the stored status still equals expected.
	// Returns a ConflictError when no row matched.
	UpdateIfStatus(ctx context.Context, aggregate *locker.Locker, expected locker.Status) error

	// Delete removes a locker row.
	Delete(ctx context.Context, id kernel.ID) error

	// NumberExists reports whether a locker with the given number is stored.
	NumberExists(ctx context.Context, number string) (bool, error)

	// List returns a snapshot ordered by id.
	List(ctx context.Context, filter LockerFilter) ([]*locker.Locker, error)
}
