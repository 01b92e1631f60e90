// Package jobs provides scheduled background tasks for the locker service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// None of the jobs mutate lockers.
//
// # Available Jobs
//
// 1. AttemptSweepJob - Runs every minute to drop expired access-code failure counters
// 2. InvariantAuditJob - Runs every five minutes to report lockers whose code disagrees with their status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(limiter, db, metrics, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The audit job logs every broken row and the scan errors it hits
// - The sweep job cannot fail; it only logs when it removed counters
// - Failed job starts will stop any already running jobs
package jobs
