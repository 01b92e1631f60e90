package notify

import (
	"context"
	"log/slog"

	"lockers/internal/core/ports"
)

// Log writes notices to the logger instead of delivering them. Used when no
// delivery channel is configured. The code itself is never logged.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger.With("component", "notify")}
}

func (l *Log) NotifyAccessCode(ctx context.Context, notice ports.AccessCodeNotice) error {
	l.logger.InfoContext(ctx, "access code issued",
		"customer_id", notice.CustomerID.String(),
		"locker_id", notice.LockerID.String(),
		"locker_number", notice.LockerNumber)
	return nil
}
