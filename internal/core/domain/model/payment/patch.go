package payment

import "time"

// Patch lists the editable fields of a payment record. Nil fields are left unchanged.
type Patch struct {
	Amount      *float64
	PaymentDate *time.Time
}

func (p Patch) IsEmpty() bool {
	return p.Amount == nil && p.PaymentDate == nil
}
