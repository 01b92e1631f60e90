package paymentrepo

import (
	"context"
	"fmt"

	"lockers/internal/adapters/out/postgres/dberr"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "payment"

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id fmt.Stringer, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
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

func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"amount":       dto.Amount,
		"payment_date": dto.PaymentDate,
		"updated_at":   dto.UpdatedAt,
		"lifecycle":    dto.Lifecycle,
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

func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		return nil, dberr.Translate(err, entity, id.String())
	}

	return toDomain(dto)
}
