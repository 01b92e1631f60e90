// Package errs provides standardized error types for the locker service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes validation errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside of its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and the failure kinds callers branch on: UnauthenticatedError, UnauthorizedError,
// ConflictError, InvalidStateError, InvalidCredentialError, TooManyAttemptsError and
// UnavailableError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any error to the closed Kind enumeration so that transport adapters
// can translate failures without inspecting messages.
package errs
