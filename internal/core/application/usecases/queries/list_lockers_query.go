package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListLockersQueryIsNotConstructed = errors.New(
	"ListLockersQuery must be created via NewListLockersQuery constructor",
)

// LockerFilter selects which lockers ListLockers returns.
type LockerFilter string

const (
	FilterAll       LockerFilter = "all"
	FilterAvailable LockerFilter = "available"
	FilterOccupied  LockerFilter = "occupied"
	// FilterBooked returns the occupied lockers held by the caller's own orders.
	FilterBooked LockerFilter = "booked"
)

// LockerFilterFromString parses a filter name, ignoring case.
func LockerFilterFromString(s string) (LockerFilter, error) {
	f := LockerFilter(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := filterOperations[f]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("filter",
			fmt.Errorf("%q is not one of all, available, occupied, booked", s))
	}
	return f, nil
}

var filterOperations = map[LockerFilter]auth.Operation{
	FilterAll:       auth.ListAllLockers,
	FilterAvailable: auth.ListAvailableLockers,
	FilterOccupied:  auth.ListOccupiedLockers,
	FilterBooked:    auth.ListBookedLockers,
}

type ListLockersQuery struct {
	principal auth.Principal
	filter    LockerFilter

	guard guard.ConstructorGuard
}

func NewListLockersQuery(principal auth.Principal, filter LockerFilter) (ListLockersQuery, error) {
	if _, ok := filterOperations[filter]; !ok {
		return ListLockersQuery{}, errs.NewValueIsInvalidError("filter")
	}

	return ListLockersQuery{
		principal: principal,
		filter:    filter,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListLockersQuery) Validate() error {
	return q.guard.Validate(ErrListLockersQueryIsNotConstructed)
}

// ListLockersQueryHandler returns a snapshot of lockers ordered by id. Each filter
// is authorized separately; an empty result is an empty slice.
//
// Example:
//
//	query, _ := NewListLockersQuery(principal, FilterAvailable)
//	lockers, err := handler.Handle(ctx, query)
type ListLockersQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
}

func NewListLockersQueryHandler(db *gorm.DB, authorizer services.Authorizer) ListLockersQueryHandler {
	return ListLockersQueryHandler{db: db, authorizer: authorizer}
}

func (h ListLockersQueryHandler) Handle(ctx context.Context, query ListLockersQuery) ([]LockerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(query.principal, filterOperations[query.filter]); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("lockers").
		Select("id, number, location, size, status")

	switch query.filter {
	case FilterAvailable:
		tx = tx.Where("status = ?", locker.Available.String())
	case FilterOccupied:
		tx = tx.Where("status = ?", locker.Occupied.String())
	case FilterBooked:
		owned := h.db.Table("orders").
			Select("locker_id").
			Where("customer_id = ? AND lifecycle <> ? AND locker_id IS NOT NULL",
				query.principal.ID().String(), deletion.Deleted.String())
		tx = tx.Where("status = ? AND id IN (?)", locker.Occupied.String(), owned)
	case FilterAll:
	}

	lockers := make([]LockerView, 0)
	if err := tx.Order("id").Scan(&lockers).Error; err != nil {
		return nil, readError(err, "locker", query.filter)
	}

	return lockers, nil
}
