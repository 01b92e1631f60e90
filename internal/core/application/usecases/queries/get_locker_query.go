package queries

import (
	"context"
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetLockerQueryIsNotConstructed = errors.New(
	"GetLockerQuery must be created via NewGetLockerQuery constructor",
)

type GetLockerQuery struct {
	principal auth.Principal
	lockerID  kernel.ID

	guard guard.ConstructorGuard
}

func NewGetLockerQuery(principal auth.Principal, lockerID kernel.ID) (GetLockerQuery, error) {
	if err := lockerID.Validate(); err != nil {
		return GetLockerQuery{}, err
	}

	return GetLockerQuery{
		principal: principal,
		lockerID:  lockerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetLockerQuery) Validate() error {
	return q.guard.Validate(ErrGetLockerQueryIsNotConstructed)
}

type GetLockerQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
}

func NewGetLockerQueryHandler(db *gorm.DB, authorizer services.Authorizer) GetLockerQueryHandler {
	return GetLockerQueryHandler{db: db, authorizer: authorizer}
}

func (h GetLockerQueryHandler) Handle(ctx context.Context, query GetLockerQuery) (LockerView, error) {
	if err := query.Validate(); err != nil {
		return LockerView{}, err
	}

	if err := h.authorizer.Authorize(query.principal, auth.GetLocker); err != nil {
		return LockerView{}, err
	}

	var view LockerView
	err := h.db.WithContext(ctx).
		Table("lockers").
		Select("id, number, location, size, status").
		Where("id = ?", uint64(query.lockerID)).
		Take(&view).Error
	if err != nil {
		return LockerView{}, readError(err, "locker", query.lockerID)
	}

	return view, nil
}
