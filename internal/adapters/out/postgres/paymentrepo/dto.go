// Package paymentrepo persists payment aggregates with GORM.
package paymentrepo

import (
	"time"

	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/payment"
)

type PaymentDTO struct {
	ID          string    `gorm:"size:36;primaryKey"`
	CustomerID  string    `gorm:"size:36;not null;index"`
	Amount      float64   `gorm:"not null"`
	Currency    string    `gorm:"size:3;not null"`
	PaymentDate time.Time `gorm:"not null"`
	Status      string    `gorm:"size:32;not null"`
	ChargeID    string    `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	Lifecycle   string    `gorm:"size:20;not null;index"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          p.ID().String(),
		CustomerID:  p.CustomerID().String(),
		Amount:      p.Amount(),
		Currency:    p.Currency(),
		PaymentDate: p.PaymentDate(),
		Status:      p.Status(),
		ChargeID:    p.ChargeID(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
		Lifecycle:   p.Lifecycle().String(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	lifecycle, err := deletion.LifecycleFromString(dto.Lifecycle)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(payment.State{
		ID:          id,
		CustomerID:  customerID,
		Amount:      dto.Amount,
		Currency:    dto.Currency,
		PaymentDate: dto.PaymentDate,
		Status:      dto.Status,
		ChargeID:    dto.ChargeID,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
		Lifecycle:   lifecycle,
	})
}
