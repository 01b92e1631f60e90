package deletion

import (
	"errors"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is the audit record of a deletion asked for by an owner and processed by staff.
type Request struct {
	id          kernel.UUID
	kind        SubjectKind
	subjectID   kernel.UUID
	requestedBy kernel.UUID
	requestedAt time.Time
	processed   bool
	processedBy *kernel.UUID
	processedAt *time.Time

	guard guard.ConstructorGuard
}

// NewRequest opens an unprocessed request.
func NewRequest(id kernel.UUID, kind SubjectKind, subjectID, requestedBy kernel.UUID, at time.Time) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		subjectID.Validate(),
		requestedBy.Validate(),
		validateTime("requested at", at),
	); err != nil {
		return nil, err
	}

	return &Request{
		id:          id,
		kind:        kind,
		subjectID:   subjectID,
		requestedBy: requestedBy,
		requestedAt: at.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreRequest rebuilds a request from storage.
func RestoreRequest(
	id kernel.UUID,
	kind SubjectKind,
	subjectID, requestedBy kernel.UUID,
	requestedAt time.Time,
	processedBy *kernel.UUID,
	processedAt *time.Time,
) (*Request, error) {
	r, err := NewRequest(id, kind, subjectID, requestedBy, requestedAt)
	if err != nil {
		return nil, err
	}

	if (processedBy == nil) != (processedAt == nil) {
		return nil, errs.NewValueIsInvalidError("processed by and processed at must be set together")
	}

	if processedBy != nil {
		r.processed = true
		r.processedBy = processedBy
		at := processedAt.UTC()
		r.processedAt = &at
	}

	return r, nil
}

func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// Process marks the request as handled by a staff member.
func (r *Request) Process(by kernel.UUID, at time.Time) error {
	if r.processed {
		return errs.NewConflictError("deletion request already processed")
	}
	if err := errors.Join(by.Validate(), validateTime("processed at", at)); err != nil {
		return err
	}

	at = at.UTC()
	r.processed = true
	r.processedBy = &by
	r.processedAt = &at
	return nil
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) Kind() SubjectKind {
	return r.kind
}

func (r *Request) SubjectID() kernel.UUID {
	return r.subjectID
}

func (r *Request) RequestedBy() kernel.UUID {
	return r.requestedBy
}

func (r *Request) RequestedAt() time.Time {
	return r.requestedAt
}

func (r *Request) IsProcessed() bool {
	return r.processed
}

func (r *Request) ProcessedBy() *kernel.UUID {
	return r.processedBy
}

func (r *Request) ProcessedAt() *time.Time {
	return r.processedAt
}

func validateTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
