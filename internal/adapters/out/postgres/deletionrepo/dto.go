// Package deletionrepo persists the deletion request audit trail.
package deletionrepo

import (
	"time"

	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
)

// RequestDTO allows one request per subject.
type RequestDTO struct {
	ID          string     `gorm:"size:36;primaryKey"`
	Kind        string     `gorm:"size:20;not null;uniqueIndex:idx_deletion_requests_subject"`
	SubjectID   string     `gorm:"size:36;not null;uniqueIndex:idx_deletion_requests_subject"`
	RequestedBy string     `gorm:"size:36;not null"`
	RequestedAt time.Time  `gorm:"not null"`
	Processed   bool       `gorm:"not null;index"`
	ProcessedBy *string    `gorm:"size:36"`
	ProcessedAt *time.Time
}

func (RequestDTO) TableName() string {
	return "deletion_requests"
}

func fromDomain(r *deletion.Request) RequestDTO {
	var processedBy *string
	if by := r.ProcessedBy(); by != nil {
		s := by.String()
		processedBy = &s
	}

	return RequestDTO{
		ID:          r.ID().String(),
		Kind:        r.Kind().String(),
		SubjectID:   r.SubjectID().String(),
		RequestedBy: r.RequestedBy().String(),
		RequestedAt: r.RequestedAt(),
		Processed:   r.IsProcessed(),
		ProcessedBy: processedBy,
		ProcessedAt: r.ProcessedAt(),
	}
}

func toDomain(dto RequestDTO) (*deletion.Request, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	kind, err := deletion.SubjectKindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	subjectID, err := kernel.UUIDFromString(dto.SubjectID)
	if err != nil {
		return nil, err
	}

	requestedBy, err := kernel.UUIDFromString(dto.RequestedBy)
	if err != nil {
		return nil, err
	}

	var processedBy *kernel.UUID
	if dto.ProcessedBy != nil {
		by, byErr := kernel.UUIDFromString(*dto.ProcessedBy)
		if byErr != nil {
			return nil, byErr
		}
		processedBy = &by
	}

	return deletion.RestoreRequest(id, kind, subjectID, requestedBy, dto.RequestedAt, processedBy, dto.ProcessedAt)
}
