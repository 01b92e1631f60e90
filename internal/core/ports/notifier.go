package ports

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
)

// AccessCodeNotice carries a freshly issued code to the customer.
type AccessCodeNotice struct {
	CustomerID   kernel.UUID
	Name         string
	Email        string
	Phone        string
	LockerID     kernel.ID
	LockerNumber string
	Location     string
	Code         string
}

// Notifier delivers access codes over SMS, e-mail or any other channel.
type Notifier interface {
	NotifyAccessCode(ctx context.Context, notice AccessCodeNotice) error
}
