package jobs

import (
	"context"
	"log/slog"
	"time"

	"lockers/internal/adapters/out/postgres/lockerrepo"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	auditBatchSize = 500
	auditTimeout   = time.Minute
)

// InvariantAuditJob re-reads every locker row and reports the ones whose code
// disagrees with their status. It never repairs rows; it only logs them.
type InvariantAuditJob struct {
	db     *gorm.DB
	gauge  prometheus.Gauge
	cron   *cron.Cron
	logger *slog.Logger
}

// NewInvariantAuditJob creates the audit job. gauge may be nil.
func NewInvariantAuditJob(db *gorm.DB, gauge prometheus.Gauge, logger *slog.Logger) *InvariantAuditJob {
	return &InvariantAuditJob{
		db:     db,
		gauge:  gauge,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "invariant_audit_job"),
	}
}

// Start schedules the audit every five minutes.
func (j *InvariantAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		if _, err := j.Audit(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Locker invariant audit failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invariant audit job started (running every 5 minutes)")
	return nil
}

// Stop waits for a running audit to finish.
func (j *InvariantAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Invariant audit job stopped")
}

// Audit scans the lockers table in batches and returns the ids of rows that
// could not be restored.
func (j *InvariantAuditJob) Audit(ctx context.Context) ([]uint64, error) {
	broken := make([]uint64, 0)

	var batch []lockerrepo.LockerDTO
	result := j.db.WithContext(ctx).
		Order("id").
		FindInBatches(&batch, auditBatchSize, func(_ *gorm.DB, _ int) error {
			for _, dto := range batch {
				if _, err := lockerrepo.ToDomain(dto); err != nil {
					broken = append(broken, dto.ID)
					j.logger.ErrorContext(ctx, "Locker violates its invariants",
						"locker_id", dto.ID, "number", dto.Number, "status", dto.Status, "error", err)
				}
			}
			return nil
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if j.gauge != nil {
		j.gauge.Set(float64(len(broken)))
	}
	return broken, nil
}
