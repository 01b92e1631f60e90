// Package locker contains the Locker aggregate: a physical storage compartment with a
// human-readable number, a size class, and an access-code lifecycle.
//
// A locker is AVAILABLE or OCCUPIED. Booking moves it to OCCUPIED and attaches a fresh
// AccessCode; unlocking with that code (case-insensitive) frees it; locking with the
// last issued code (case-sensitive) occupies it again.
//
// The aggregate keeps one invariant at all times: a current code is present if and
// only if the locker is OCCUPIED. The last issued code is remembered separately so a
// customer can re-lock after collecting laundry.
package locker
