package lockerrepo

import (
	"context"
	"fmt"

	"lockers/internal/adapters/out/postgres/dberr"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "locker"

// GormLockerRepository implements ports.LockerRepository using GORM.
type GormLockerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id fmt.Stringer, aggregate any)
}

// NewGormLockerRepository creates a new GORM locker repository.
func NewGormLockerRepository(db *gorm.DB, tracker aggregateTracker) *GormLockerRepository {
	return &GormLockerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the locker and hands the generated id back to the aggregate.
func (r *GormLockerRepository) Add(ctx context.Context, aggregate *locker.Locker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, entity, aggregate.Number())
	}

	if err := aggregate.Identify(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLockerRepository) Get(ctx context.Context, id kernel.ID) (*locker.Locker, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate issues SELECT ... FOR UPDATE. SQLite ignores the locking clause
// and serializes whole transactions instead.
func (r *GormLockerRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*locker.Locker, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLockerRepository) get(db *gorm.DB, id kernel.ID) (*locker.Locker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LockerDTO
	if err := db.First(&dto, "id = ?", uint64(id)).Error; err != nil {
		return nil, dberr.Translate(err, entity, id.String())
	}

	return ToDomain(dto)
}

// UpdateIfStatus is a compare-and-swap on the status column.
func (r *GormLockerRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *locker.Locker,
	expected locker.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LockerDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(map[string]any{
			"status":      dto.Status,
			"code":        dto.Code,
			"issued_code": dto.IssuedCode,
		})
	if result.Error != nil {
		return dberr.Translate(result.Error, entity, aggregate.ID().String())
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError(fmt.Sprintf("locker %s changed concurrently", aggregate.ID()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLockerRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LockerDTO{}, uint64(id))
	if result.Error != nil {
		return dberr.Translate(result.Error, entity, id.String())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, id.String())
	}

	return nil
}

func (r *GormLockerRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&LockerDTO{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return false, dberr.Translate(err, entity, number)
	}
	return count > 0, nil
}

// List returns lockers matching filter ordered by id.
func (r *GormLockerRepository) List(ctx context.Context, filter ports.LockerFilter) ([]*locker.Locker, error) {
	query := r.db.WithContext(ctx).Order("id")

	switch filter {
	case ports.AvailableLockers:
		query = query.Where("status = ?", locker.Available.String())
	case ports.OccupiedLockers:
		query = query.Where("status = ?", locker.Occupied.String())
	case ports.AllLockers:
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("filter", fmt.Errorf("%d is not a locker filter", filter))
	}

	var dtos []LockerDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, dberr.Translate(err, entity, "list")
	}

	lockers := make([]*locker.Locker, 0, len(dtos))
	for _, dto := range dtos {
		l, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}

	return lockers, nil
}
