// Package services provides domain services that coordinate work spanning more than
// one aggregate, or that hold policy no single aggregate owns.
//
// The package includes:
//   - LockerBooking: books a locker against the customer's most recent order
//   - CodeGenerator: mints numeric access codes from a cryptographic source
//   - AttemptLimiter: throttles repeated wrong codes per locker
//   - Authorizer: checks a principal against the capability table
package services
