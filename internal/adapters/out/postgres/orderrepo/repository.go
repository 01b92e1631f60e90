package orderrepo

import (
	"context"
	"fmt"

	"lockers/internal/adapters/out/postgres/dberr"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "order"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id fmt.Stringer, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, entity, dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves every column of an existing order, nullable ones included.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"services":    dto.Services,
		"weight":      dto.Weight,
		"payment_id":  dto.PaymentID,
		"locker_id":   dto.LockerID,
		"locker_code": dto.LockerCode,
		"updated_at":  dto.UpdatedAt,
		"lifecycle":   dto.Lifecycle,
	})
	if result.Error != nil {
		return dberr.Translate(result.Error, entity, dto.ID)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		return nil, dberr.Translate(err, entity, id.String())
	}

	return toDomain(dto)
}

// ListVisibleForCustomer returns the customer's orders, newest first.
func (r *GormOrderRepository) ListVisibleForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND lifecycle <> ?", customerID.String(), deletion.Deleted.String()).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error; err != nil {
		return nil, dberr.Translate(err, entity, customerID.String())
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
