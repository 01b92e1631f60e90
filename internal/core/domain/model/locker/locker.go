package locker

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

const (
	maxNumberLength   = 50
	maxLocationLength = 255
)

var (
	// ErrLockerIsNotConstructed is returned when a Locker was not created through
	// NewLocker or RestoreLocker.
	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")

	// ErrLockerAlreadyIdentified is returned when storage tries to assign a second identity.
	ErrLockerAlreadyIdentified = errors.New("locker already has an identity")

	// ErrCodeInvariantViolated is returned when the current code and status disagree.
	ErrCodeInvariantViolated = errors.New("locker code must be present exactly when the locker is occupied")
)

// Locker is the aggregate root for a single storage compartment.
//
// Locker follows these invariants:
//   - Number is unique, non-empty and at most 50 characters
//   - Location is non-empty and at most 255 characters
//   - A current code is present if and only if status is Occupied
//   - Status changes only through Book, Unlock and Lock
type Locker struct {
	// id is assigned by storage on first insert
	id kernel.ID

	number   string
	location string
	size     Size
	status   Status

	// code is the current access code, nil while Available
	code *AccessCode

	// issuedCode is the last code minted by a booking; survives Unlock so Lock can reuse it
	issuedCode *AccessCode

	guard guard.ConstructorGuard
}

// NewLocker creates an Available locker with no codes. The identity is assigned
// later by the repository through Identify.
//
// Example:
//
//	l, err := locker.NewLocker("L-100", "Building A, ground floor", locker.Medium)
//	if err != nil {
//	    // Handle validation error
//	}
func NewLocker(number, location string, size Size) (*Locker, error) {
	l := &Locker{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setNumber(number),
		l.setLocation(location),
		l.setSize(size),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocker rebuilds a locker from storage and rejects rows that break the
// code invariant.
func RestoreLocker(
	id kernel.ID,
	number, location string,
	size Size,
	status Status,
	code, issuedCode *AccessCode,
) (*Locker, error) {
	l := &Locker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setNumber(number),
		l.setLocation(location),
		l.setSize(size),
		status.Validate(),
		validateOptionalCode(code),
		validateOptionalCode(issuedCode),
	); err != nil {
		return nil, err
	}

	l.status = status
	l.code = code
	l.issuedCode = issuedCode

	if err := l.CheckInvariants(); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the locker was properly constructed.
func (l *Locker) Validate() error {
	if l == nil {
		return ErrLockerIsNotConstructed
	}
	return l.guard.Validate(ErrLockerIsNotConstructed)
}

// CheckInvariants verifies that the current code is present exactly when Occupied.
func (l *Locker) CheckInvariants() error {
	if (l.status == Occupied) != (l.code != nil) {
		return fmt.Errorf("%w: locker %s is %s, code present: %t",
			ErrCodeInvariantViolated, l.number, l.status, l.code != nil)
	}
	return nil
}

// Identify sets the storage-assigned identity. It can be called once.
func (l *Locker) Identify(id kernel.ID) error {
	if l.id.IsAssigned() {
		return ErrLockerAlreadyIdentified
	}
	return l.setID(id)
}

func (l *Locker) IsEqual(other *Locker) bool {
	return other != nil && l.id.IsAssigned() && l.id == other.id
}

func (l *Locker) ID() kernel.ID {
	return l.id
}

func (l *Locker) Number() string {
	return l.number
}

func (l *Locker) Location() string {
	return l.location
}

func (l *Locker) Size() Size {
	return l.size
}

func (l *Locker) Status() Status {
	return l.status
}

// Code returns the current access code, nil unless Occupied.
func (l *Locker) Code() *AccessCode {
	return l.code
}

// IssuedCode returns the last code minted by a booking, if any.
func (l *Locker) IssuedCode() *AccessCode {
	return l.issuedCode
}

func (l *Locker) IsAvailable() bool {
	return l.status == Available
}

// Book occupies an Available locker with a freshly generated code.
//
// Returns a ConflictError when the locker is already Occupied.
func (l *Locker) Book(code AccessCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	newStatus, err := l.status.Book()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.code = &code
	l.issuedCode = &code
	return nil
}

// Unlock frees an Occupied locker when candidate matches the current code,
// ignoring case. The code is kept as the issued code for a later Lock.
//
// Returns a ConflictError when the locker is not Occupied and an
// InvalidCredentialError when the code does not match.
func (l *Locker) Unlock(candidate string) error {
	newStatus, err := l.status.Unlock()
	if err != nil {
		return err
	}

	if l.code == nil || !l.code.EqualsIgnoreCase(candidate) {
		return errs.NewInvalidCredentialError("invalid code, try again")
	}

	l.issuedCode = l.code
	l.code = nil
	l.status = newStatus
	return nil
}

// Lock occupies an Available locker again when candidate matches the issued code
// exactly. Case matters here, unlike Unlock.
//
// Returns a ConflictError when the locker is not Available and an
// InvalidCredentialError when no code was issued or the code does not match.
func (l *Locker) Lock(candidate string) error {
	newStatus, err := l.status.Lock()
	if err != nil {
		return err
	}

	if l.issuedCode == nil || !l.issuedCode.Equals(candidate) {
		return errs.NewInvalidCredentialError("invalid code, try again")
	}

	l.code = l.issuedCode
	l.status = newStatus
	return nil
}

// EnsureRemovable rejects deletion of a locker that still holds laundry.
func (l *Locker) EnsureRemovable() error {
	if l.status == Occupied {
		return errs.NewConflictError(fmt.Sprintf("locker %s is occupied", l.number))
	}
	return nil
}

func (l *Locker) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Locker) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if n := utf8.RuneCountInString(number); n > maxNumberLength {
		return errs.NewValueIsOutOfRangeError("number length", n, 1, maxNumberLength)
	}
	l.number = number
	return nil
}

func (l *Locker) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if n := utf8.RuneCountInString(location); n > maxLocationLength {
		return errs.NewValueIsOutOfRangeError("location length", n, 1, maxLocationLength)
	}
	l.location = location
	return nil
}

func (l *Locker) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	l.size = size
	return nil
}

func validateOptionalCode(code *AccessCode) error {
	if code == nil {
		return nil
	}
	return code.Validate()
}
