// Package queries holds the read side. Handlers read straight from the database
// with GORM and return flat views; they never load aggregates.
package queries

import (
	"errors"
	"time"

	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// LockerView never carries an access code.
type LockerView struct {
	ID       uint64
	Number   string
	Location string
	Size     string
	Status   string
}

type OrderView struct {
	ID         string
	CustomerID string
	Services   string
	Weight     float64
	PaymentID  *string
	LockerID   *uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Lifecycle  string
}

type PaymentView struct {
	ID          string
	CustomerID  string
	Amount      float64
	Currency    string
	PaymentDate time.Time
	Status      string
	ChargeID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Lifecycle   string
}

type DeletionRequestView struct {
	ID          string
	Kind        string
	SubjectID   string
	RequestedBy string
	RequestedAt time.Time
	Processed   bool
	ProcessedBy *string
	ProcessedAt *time.Time
}

// readError hides storage failures behind Unavailable and turns a missing row
// into NotFound for entity.
func readError(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return errs.NewUnavailableError("database", err)
}
