package services

import (
	"lockers/internal/core/domain/model/order"
	"lockers/internal/pkg/errs"
)

// SelectLatestOrder returns the customer's most recent visible order: latest
// creation time first, then highest identifier. Deleted orders are skipped.
//
// Returns an InvalidStateError ("no orders found") when nothing qualifies.
func SelectLatestOrder(orders []*order.Order) (*order.Order, error) {
	var latest *order.Order

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		if !o.Lifecycle().IsVisible() {
			continue
		}

		if o.IsNewerThan(latest) {
			latest = o
		}
	}

	if latest == nil {
		return nil, errs.NewInvalidStateError("no orders found")
	}

	return latest, nil
}
