package locker

import (
	"fmt"
	"strings"

	"lockers/internal/pkg/errs"
)

// Status is the occupancy state of a locker.
//
//	Available ──Book/Lock──> Occupied
//	    ^                       │
//	    └────────Unlock─────────┘
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Available lockers can be booked or locked with their last issued code.
	Available

	// Occupied lockers hold laundry and carry a current access code.
	Occupied
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Occupied:  "occupied",
	}
}

// StatusFromString parses the persisted or wire name of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is Available or Occupied.
func (s Status) Validate() error {
	if s != Available && s != Occupied {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Book transitions Available -> Occupied.
func (s Status) Book() (Status, error) {
	if s != Available {
		return 0, errs.NewConflictError("locker is already booked")
	}
	return Occupied, nil
}

// Unlock transitions Occupied -> Available.
func (s Status) Unlock() (Status, error) {
	if s != Occupied {
		return 0, errs.NewConflictError("locker is not occupied")
	}
	return Available, nil
}

// Lock transitions Available -> Occupied using a previously issued code.
func (s Status) Lock() (Status, error) {
	if s != Available {
		return 0, errs.NewConflictError("locker is not available")
	}
	return Occupied, nil
}
