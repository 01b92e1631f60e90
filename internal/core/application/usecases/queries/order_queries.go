package queries

import (
	"context"
	"errors"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

const orderColumns = "id, customer_id, services, weight, payment_id, locker_id, created_at, updated_at, lifecycle"

// ListOrdersQuery lists orders visible to the caller: customers see their own,
// staff see everyone's. Deleted orders are never listed.
type ListOrdersQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(principal auth.Principal) ListOrdersQuery {
	return ListOrdersQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

type ListOrdersQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
}

func NewListOrdersQueryHandler(db *gorm.DB, authorizer services.Authorizer) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, authorizer: authorizer}
}

// Handle returns the newest orders first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(query.principal, auth.ListOrders); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders").
		Select(orderColumns).
		Where("lifecycle <> ?", deletion.Deleted.String())

	if query.principal.Role() == auth.Customer {
		tx = tx.Where("customer_id = ?", query.principal.ID().String())
	}

	orders := make([]OrderView, 0)
	if err := tx.Order("created_at DESC, id DESC").Scan(&orders).Error; err != nil {
		return nil, readError(err, "order", query.principal.ID())
	}

	return orders, nil
}

type GetOrderQuery struct {
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(principal auth.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{principal: principal, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

type GetOrderQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
}

func NewGetOrderQueryHandler(db *gorm.DB, authorizer services.Authorizer) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, authorizer: authorizer}
}

// Handle returns NotFound for a deleted order and for another customer's order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	if err := h.authorizer.Authorize(query.principal, auth.GetOrder); err != nil {
		return OrderView{}, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders").
		Select(orderColumns).
		Where("id = ? AND lifecycle <> ?", query.orderID.String(), deletion.Deleted.String())

	if query.principal.Role() == auth.Customer {
		tx = tx.Where("customer_id = ?", query.principal.ID().String())
	}

	var view OrderView
	if err := tx.Take(&view).Error; err != nil {
		return OrderView{}, readError(err, "order", query.orderID)
	}

	return view, nil
}
