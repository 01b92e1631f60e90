package kernel

import (
	"fmt"
	"strconv"

	"lockers/internal/pkg/errs"
)

// ErrIDIsNotAssigned is returned when a zero ID is used where a persisted identity is required.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("ID must be assigned by storage")

// ID is a positive numeric identity assigned by storage on first insert.
// The zero value means "not persisted yet".
type ID uint64

// IDFromString parses a decimal identity, as found in URL paths.
func IDFromString(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a positive integer", s))
	}

	id := ID(v)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate fails for the zero ID.
func (id ID) Validate() error {
	if id == 0 {
		return ErrIDIsNotAssigned
	}
	return nil
}

// IsAssigned reports whether storage has given this identity a value.
func (id ID) IsAssigned() bool {
	return id != 0
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
