package ports

import (
	"context"
	"time"
)

const (
	EventLockerBooked   = "locker.booked"
	EventLockerUnlocked = "locker.unlocked"
	EventLockerLocked   = "locker.locked"
)

// Event is an integration event published after a committed locker transition.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// EventPublisher sends integration events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
