// Package kernel provides core domain primitives shared by the locker service aggregates.
//
// The package includes:
//   - ID: a store-assigned numeric identity, used for lockers
//   - UUID: a value object for client-generated identifiers with validation and comparison
//
// Both are immutable and safe for concurrent use.
package kernel
