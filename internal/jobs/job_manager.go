package jobs

import (
	"fmt"
	"log/slog"

	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/metrics"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	attemptSweepJob   *AttemptSweepJob
	invariantAuditJob *InvariantAuditJob
}

// NewJobManager creates a new job manager with all required jobs. m may be nil.
func NewJobManager(
	limiter *services.AttemptLimiter,
	db *gorm.DB,
	m *metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	sweep := NewAttemptSweepJob(limiter, nil, logger)
	audit := NewInvariantAuditJob(db, nil, logger)
	if m != nil {
		sweep.gauge = m.ThrottledLockers
		audit.gauge = m.InvariantViolations
	}

	return &JobManager{
		attemptSweepJob:   sweep,
		invariantAuditJob: audit,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.attemptSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start attempt sweep job: %w", err)
	}

	if err := jm.invariantAuditJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.attemptSweepJob.Stop()
		return fmt.Errorf("failed to start invariant audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invariantAuditJob.Stop()
	jm.attemptSweepJob.Stop()
}
