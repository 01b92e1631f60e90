// Package orderrepo provides data transfer objects and mapping functions for order persistence.
package orderrepo

import (
	"time"

	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Identifiers are stored as canonical UUID strings so the same schema works on
// postgres, mysql and sqlite.
type OrderDTO struct {
	ID         string    `gorm:"size:36;primaryKey"`
	CustomerID string    `gorm:"size:36;not null;index:idx_orders_customer_created,priority:1"`
	Services   string    `gorm:"not null"`
	Weight     float64   `gorm:"not null"`
	PaymentID  *string   `gorm:"size:36"`
	LockerID   *uint64   `gorm:"index"`
	LockerCode *string   `gorm:"size:6"`
	CreatedAt  time.Time `gorm:"not null;index:idx_orders_customer_created,priority:2"`
	UpdatedAt  time.Time `gorm:"not null"`
	Lifecycle  string    `gorm:"size:20;not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var paymentID *string
	if id := o.PaymentID(); id != nil {
		s := id.String()
		paymentID = &s
	}

	var lockerID *uint64
	if id := o.LockerID(); id != nil {
		raw := uint64(*id)
		lockerID = &raw
	}

	var code *string
	if c := o.LockerCode(); c != nil {
		s := c.String()
		code = &s
	}

	return OrderDTO{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Services:   o.Services(),
		Weight:     o.Weight(),
		PaymentID:  paymentID,
		LockerID:   lockerID,
		LockerCode: code,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
		Lifecycle:  o.Lifecycle().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var paymentID *kernel.UUID
	if dto.PaymentID != nil {
		pID, paymentErr := kernel.UUIDFromString(*dto.PaymentID)
		if paymentErr != nil {
			return nil, paymentErr
		}
		paymentID = &pID
	}

	var lockerID *kernel.ID
	if dto.LockerID != nil {
		lID := kernel.ID(*dto.LockerID)
		lockerID = &lID
	}

	var code *locker.AccessCode
	if dto.LockerCode != nil {
		c, codeErr := locker.NewAccessCode(*dto.LockerCode)
		if codeErr != nil {
			return nil, codeErr
		}
		code = &c
	}

	lifecycle, err := deletion.LifecycleFromString(dto.Lifecycle)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.State{
		ID:         id,
		CustomerID: customerID,
		Services:   dto.Services,
		Weight:     dto.Weight,
		PaymentID:  paymentID,
		LockerID:   lockerID,
		LockerCode: code,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
		Lifecycle:  lifecycle,
	})
}
