package jobs

import (
	"context"
	"log/slog"

	"lockers/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// AttemptSweepJob drops expired access-code failure counters once a minute and
// reports how many lockers are still locked out.
type AttemptSweepJob struct {
	limiter *services.AttemptLimiter
	gauge   prometheus.Gauge
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAttemptSweepJob creates the sweep job. gauge may be nil.
func NewAttemptSweepJob(limiter *services.AttemptLimiter, gauge prometheus.Gauge, logger *slog.Logger) *AttemptSweepJob {
	return &AttemptSweepJob{
		limiter: limiter,
		gauge:   gauge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "attempt_sweep_job"),
	}
}

// Start schedules the sweep at second zero of every minute.
func (j *AttemptSweepJob) Start() error {
	if _, err := j.cron.AddFunc("0 * * * * *", j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Attempt sweep job started (running every minute)")
	return nil
}

// Stop waits for a running sweep to finish.
func (j *AttemptSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Attempt sweep job stopped")
}

func (j *AttemptSweepJob) run() {
	removed := j.limiter.Sweep()
	locked := j.limiter.LockedOut()

	if j.gauge != nil {
		j.gauge.Set(float64(locked))
	}
	if removed > 0 {
		j.logger.Debug("expired attempt counters removed", "removed", removed, "locked_out", locked)
	}
}
