package deletionrepo

import (
	"context"
	"fmt"

	"lockers/internal/adapters/out/postgres/dberr"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "deletion request"

// GormRequestRepository implements ports.DeletionRequestRepository using GORM.
type GormRequestRepository struct {
	db *gorm.DB
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) Add(ctx context.Context, request *deletion.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("deletion already requested for %s %s", dto.Kind, dto.SubjectID), err)
		}
		return dberr.Translate(err, entity, dto.ID)
	}

	return nil
}

func (r *GormRequestRepository) Update(ctx context.Context, request *deletion.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"processed":    dto.Processed,
		"processed_by": dto.ProcessedBy,
		"processed_at": dto.ProcessedAt,
	})
	if result.Error != nil {
		return dberr.Translate(result.Error, entity, dto.ID)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, dto.ID)
	}

	return nil
}

func (r *GormRequestRepository) FindBySubject(
	ctx context.Context,
	kind deletion.SubjectKind,
	subjectID kernel.UUID,
) (*deletion.Request, error) {
	var dto RequestDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "kind = ? AND subject_id = ?", kind.String(), subjectID.String()).Error; err != nil {
		return nil, dberr.Translate(err, entity, subjectID.String())
	}

	return toDomain(dto)
}
