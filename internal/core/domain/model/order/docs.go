// Package order provides the laundry Order aggregate.
//
// The package includes:
//   - Order: a customer's laundry job with services, weight, and optional links to a
//     payment and a locker
//   - Patch: an explicit partial update of the customer-editable fields
//
// Key business rules:
//   - Orders have a valid identifier, an owning customer, non-empty services and a
//     positive weight
//   - A locker assignment always carries the access code issued at booking time
//   - Deletion follows deletion.Lifecycle; deleted orders reject every mutation
package order
