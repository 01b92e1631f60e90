package deletion

import (
	"fmt"
	"strings"

	"lockers/internal/pkg/errs"
)

// Lifecycle is the deletion state of an order, payment or account.
type Lifecycle int

const (
	Unknown Lifecycle = iota
	Active
	DeletionRequested
	Deleted
)

func getLifecycleStrings() map[Lifecycle]string {
	return map[Lifecycle]string{
		Unknown:           "unknown",
		Active:            "active",
		DeletionRequested: "deletion_requested",
		Deleted:           "deleted",
	}
}

// LifecycleFromString parses the persisted name of a lifecycle.
func LifecycleFromString(s string) (Lifecycle, error) {
	for l, name := range getLifecycleStrings() {
		if l != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return l, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("lifecycle", fmt.Errorf("%q is not a valid lifecycle", s))
}

func (l Lifecycle) Validate() error {
	if l != Active && l != DeletionRequested && l != Deleted {
		return errs.NewValueIsInvalidErrorWithCause("lifecycle", fmt.Errorf("%d is not a valid lifecycle", l))
	}
	return nil
}

func (l Lifecycle) String() string {
	if s, ok := getLifecycleStrings()[l]; ok {
		return s
	}
	return "unknown"
}

// IsVisible reports whether the entity still shows up in reads.
func (l Lifecycle) IsVisible() bool {
	return l == Active || l == DeletionRequested
}

// Request moves Active to DeletionRequested.
func (l Lifecycle) Request() (Lifecycle, error) {
	switch l {
	case Active:
		return DeletionRequested, nil
	case DeletionRequested:
		return 0, errs.NewConflictError("deletion already requested")
	default:
		return 0, errs.NewConflictError(fmt.Sprintf("cannot request deletion from %s", l))
	}
}

// Finalize moves Active or DeletionRequested to Deleted. Deleted is terminal.
func (l Lifecycle) Finalize() (Lifecycle, error) {
	if l != Active && l != DeletionRequested {
		return 0, errs.NewConflictError(fmt.Sprintf("cannot finalize deletion from %s", l))
	}
	return Deleted, nil
}
