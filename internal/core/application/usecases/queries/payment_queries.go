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
	ErrListPaymentsQueryIsNotConstructed = errors.New(
		"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
	)
	ErrGetPaymentQueryIsNotConstructed = errors.New(
		"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
	)
)

const paymentColumns = "id, customer_id, amount, currency, payment_date, status, charge_id, " +
	"created_at, updated_at, lifecycle"

type ListPaymentsQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

func NewListPaymentsQuery(principal auth.Principal) ListPaymentsQuery {
	return ListPaymentsQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

// ListPaymentsQueryHandler mirrors ListOrdersQueryHandler for payments.
type ListPaymentsQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
}

func NewListPaymentsQueryHandler(db *gorm.DB, authorizer services.Authorizer) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db, authorizer: authorizer}
}

func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(query.principal, auth.ListPayments); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("payments").
		Select(paymentColumns).
		Where("lifecycle <> ?", deletion.Deleted.String())

	if query.principal.Role() == auth.Customer {
		tx = tx.Where("customer_id = ?", query.principal.ID().String())
	}

	payments := make([]PaymentView, 0)
	if err := tx.Order("payment_date DESC, id DESC").Scan(&payments).Error; err != nil {
		return nil, readError(err, "payment", query.principal.ID())
	}

	return payments, nil
}

type GetPaymentQuery struct {
	principal auth.Principal
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPaymentQuery(principal auth.Principal, paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := paymentID.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}

	return GetPaymentQuery{principal: principal, paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

type GetPaymentQueryHandler struct {
	db         *gorm.DB
	authorizer services.Authorizer
}

func NewGetPaymentQueryHandler(db *gorm.DB, authorizer services.Authorizer) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db, authorizer: authorizer}
}

func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (PaymentView, error) {
	if err := query.Validate(); err != nil {
		return PaymentView{}, err
	}

	if err := h.authorizer.Authorize(query.principal, auth.GetPayment); err != nil {
		return PaymentView{}, err
	}

	tx := h.db.WithContext(ctx).
		Table("payments").
		Select(paymentColumns).
		Where("id = ? AND lifecycle <> ?", query.paymentID.String(), deletion.Deleted.String())

	if query.principal.Role() == auth.Customer {
		tx = tx.Where("customer_id = ?", query.principal.ID().String())
	}

	var view PaymentView
	if err := tx.Take(&view).Error; err != nil {
		return PaymentView{}, readError(err, "payment", query.paymentID)
	}

	return view, nil
}
