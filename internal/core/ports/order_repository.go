package ports

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, deleted ones included.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListVisibleForCustomer returns the customer's orders that are not Deleted.
	ListVisibleForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
