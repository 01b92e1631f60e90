package accountrepo

import (
	"context"
	"fmt"
	"strings"

	"lockers/internal/adapters/out/postgres/dberr"
	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "account"

// GormAccountRepository implements ports.AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id fmt.Stringer, aggregate any)
}

func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, entity, dto.Email)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the lifecycle, the only mutable part of an account.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ? AND role = ?", dto.ID, dto.Role).
		Update("lifecycle", dto.Lifecycle)
	if result.Error != nil {
		return dberr.Translate(result.Error, entity, dto.ID)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAccountRepository) Delete(ctx context.Context, role auth.Role, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND role = ?", id.String(), role.String()).Delete(&AccountDTO{})
	if result.Error != nil {
		return dberr.Translate(result.Error, entity, id.String())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, id.String())
	}

	return nil
}

func (r *GormAccountRepository) Get(ctx context.Context, role auth.Role, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ? AND role = ?", id.String(), role.String()).Error; err != nil {
		return nil, dberr.Translate(err, entity, id.String())
	}

	return toDomain(dto)
}

func (r *GormAccountRepository) GetByEmail(ctx context.Context, role auth.Role, email string) (*account.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ? AND role = ?", email, role.String()).Error; err != nil {
		return nil, dberr.Translate(err, entity, email)
	}

	return toDomain(dto)
}

func (r *GormAccountRepository) CountByRole(ctx context.Context, role auth.Role) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("role = ? AND lifecycle <> ?", role.String(), deletion.Deleted.String()).
		Count(&count).Error; err != nil {
		return 0, dberr.Translate(err, entity, role.String())
	}
	return count, nil
}
