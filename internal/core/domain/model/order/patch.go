package order

// Patch lists the customer-editable fields of an order. Nil fields are left unchanged.
type Patch struct {
	Services *string
	Weight   *float64
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Services == nil && p.Weight == nil
}
