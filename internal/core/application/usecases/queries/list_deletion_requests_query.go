package queries

import (
	"context"
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListDeletionRequestsQueryIsNotConstructed = errors.New(
	"ListDeletionRequestsQuery must be created via NewListDeletionRequestsQuery constructor",
)

// ListDeletionRequestsQuery is the staff work queue. An empty kind lists every kind.
type ListDeletionRequestsQuery struct {
	principal   auth.Principal
	kind        deletion.SubjectKind
	pendingOnly bool

	guard guard.ConstructorGuard
}

func NewListDeletionRequestsQuery(
	principal auth.Principal,
	kind string,
	pendingOnly bool,
) (ListDeletionRequestsQuery, error) {
	var subjectKind deletion.SubjectKind
	if kind != "" {
		k, err := deletion.SubjectKindFromString(kind)
		if err != nil {
			return ListDeletionRequestsQuery{}, err
		}
		subjectKind = k
	}

	return ListDeletionRequestsQuery{
		principal:   principal,
		kind:        subjectKind,
		pendingOnly: pendingOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListDeletionRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListDeletionRequestsQueryIsNotConstructed)
}

type ListDeletionRequestsQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
}

func NewListDeletionRequestsQueryHandler(db *gorm.DB, authorizer services.Authorizer) ListDeletionRequestsQueryHandler {
	return ListDeletionRequestsQueryHandler{db: db, authorizer: authorizer}
}

// Handle returns the oldest requests first.
func (h ListDeletionRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListDeletionRequestsQuery,
) ([]DeletionRequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(query.principal, auth.ListDeletionRequests); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("deletion_requests").
		Select("id, kind, subject_id, requested_by, requested_at, processed, processed_by, processed_at")

	if query.kind != "" {
		tx = tx.Where("kind = ?", query.kind.String())
	}
	if query.pendingOnly {
		tx = tx.Where("processed = ?", false)
	}

	requests := make([]DeletionRequestView, 0)
	if err := tx.Order("requested_at, id").Scan(&requests).Error; err != nil {
		return nil, readError(err, "deletion request", query.kind)
	}

	return requests, nil
}
