package ports

import (
	"context"

	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
)

// DeletionRequestRepository stores the deletion audit trail.
type DeletionRequestRepository interface {
	// Add persists a request. Returns a ConflictError when the subject already has one.
	Add(ctx context.Context, request *deletion.Request) error

	Update(ctx context.Context, request *deletion.Request) error

	// FindBySubject returns the request for a subject or a NotFound error.
	FindBySubject(ctx context.Context, kind deletion.SubjectKind, subjectID kernel.UUID) (*deletion.Request, error)
}
