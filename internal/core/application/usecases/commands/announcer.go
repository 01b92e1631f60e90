package commands

import (
	"context"
	"log/slog"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/ports"

	"github.com/google/uuid"
)

// Announcer runs the side effects of a committed locker transition: the access
// code notification and the integration event. Both are fire-and-forget; failures
// are logged and never reach the caller.
type Announcer struct {
	notifier ports.Notifier
	events   ports.EventPublisher
	clock    func() time.Time
	logger   *slog.Logger
}

func NewAnnouncer(notifier ports.Notifier, events ports.EventPublisher, clock func() time.Time, logger *slog.Logger) Announcer {
	return Announcer{
		notifier: notifier,
		events:   events,
		clock:    clock,
		logger:   logger.With("component", "announcer"),
	}
}

// AccessCodeIssued sends the code to the customer.
func (a Announcer) AccessCodeIssued(ctx context.Context, notice ports.AccessCodeNotice) {
	if a.notifier == nil {
		return
	}

	if err := a.notifier.NotifyAccessCode(context.WithoutCancel(ctx), notice); err != nil {
		a.logger.Warn("access code notification failed",
			"locker_id", notice.LockerID.String(),
			"customer_id", notice.CustomerID.String(),
			"error", err)
	}
}

// LockerChanged publishes eventType for l on behalf of principal. The code is
// never part of the payload.
func (a Announcer) LockerChanged(ctx context.Context, eventType string, l *locker.Locker, principal auth.Principal) {
	if a.events == nil {
		return
	}

	event := ports.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: a.clock().UTC(),
		Payload: map[string]any{
			"locker_id":     uint64(l.ID()),
			"locker_number": l.Number(),
			"status":        l.Status().String(),
			"actor_id":      principal.ID().String(),
			"actor_role":    principal.Role().String(),
		},
	}

	if err := a.events.Publish(context.WithoutCancel(ctx), event); err != nil {
		a.logger.Warn("event publish failed", "event", eventType, "locker_id", l.ID().String(), "error", err)
	}
}
