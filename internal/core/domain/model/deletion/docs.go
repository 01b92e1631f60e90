// Package deletion models removal of customer-owned records as two separately
// authorized steps.
//
// Lifecycle is the per-entity state machine:
//
//	Active ──Request──> DeletionRequested ──Finalize──> Deleted
//	   └──────────────────Finalize─────────────────────────┘
//
// Request is the audit entity recording who asked for the removal and who
// processed it.
package deletion
