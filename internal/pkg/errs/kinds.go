package errs

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("conflict")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrTooManyAttempts   = errors.New("too many attempts")
	ErrUnavailable       = errors.New("unavailable")
)

// Kind is the closed set of failure categories surfaced at the service boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindConflict
	KindInvalidState
	KindInvalidCredential
	KindTooManyAttempts
	KindUnavailable
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindInvalidState:
		return "InvalidState"
	case KindInvalidCredential:
		return "InvalidCredential"
	case KindTooManyAttempts:
		return "TooManyAttempts"
	case KindUnavailable:
		return "Unavailable"
	case KindInvalidInput:
		return "InvalidInput"
	default:
		return "Internal"
	}
}

// KindOf classifies err. TooManyAttempts is checked before InvalidCredential
// because it wraps it.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrTooManyAttempts):
		return KindTooManyAttempts
	case errors.Is(err, ErrInvalidCredential):
		return KindInvalidCredential
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidInput
	default:
		return KindInternal
	}
}

// UnauthenticatedError is returned when a caller has no valid identity.
type UnauthenticatedError struct {
	Reason string
	Cause  error
}

func NewUnauthenticatedError(reason string) *UnauthenticatedError {
	return &UnauthenticatedError{Reason: reason}
}

func NewUnauthenticatedErrorWithCause(reason string, cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Reason: reason, Cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUnauthenticated, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthenticated, e.Reason)
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// UnauthorizedError is returned when the caller's role may not perform an operation.
type UnauthorizedError struct {
	Operation string
	Role      string
}

func NewUnauthorizedError(operation, role string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Role: role}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: role %q may not %s", ErrUnauthorized, e.Role, e.Operation)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ConflictError is returned when the current state of a resource rejects the request.
type ConflictError struct {
	Reason string
	Cause  error
}

func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidStateError is returned when a business precondition outside the target resource fails.
type InvalidStateError struct {
	Reason string
}

func NewInvalidStateError(reason string) *InvalidStateError {
	return &InvalidStateError{Reason: reason}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidState, e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidCredentialError is returned on a wrong access code or password.
type InvalidCredentialError struct {
	Reason string
}

func NewInvalidCredentialError(reason string) *InvalidCredentialError {
	return &InvalidCredentialError{Reason: reason}
}

func (e *InvalidCredentialError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidCredential, e.Reason)
}

func (e *InvalidCredentialError) Unwrap() error {
	return ErrInvalidCredential
}

// TooManyAttemptsError is an InvalidCredential variant raised while a subject is locked out.
type TooManyAttemptsError struct {
	Subject    string
	RetryAfter time.Duration
}

func NewTooManyAttemptsError(subject string, retryAfter time.Duration) *TooManyAttemptsError {
	return &TooManyAttemptsError{Subject: subject, RetryAfter: retryAfter}
}

func (e *TooManyAttemptsError) Error() string {
	return fmt.Sprintf("%s: %s, retry after %s", ErrTooManyAttempts, e.Subject, e.RetryAfter.Round(time.Second))
}

func (e *TooManyAttemptsError) Unwrap() []error {
	return []error{ErrTooManyAttempts, ErrInvalidCredential}
}

// UnavailableError hides a storage or external collaborator failure from callers.
// The cause is kept for logging only.
type UnavailableError struct {
	Component string
	Cause     error
}

func NewUnavailableError(component string, cause error) *UnavailableError {
	return &UnavailableError{Component: component, Cause: cause}
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUnavailable, e.Component, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnavailable, e.Component)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}
