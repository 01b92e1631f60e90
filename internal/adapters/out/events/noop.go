package events

import (
	"context"

	"lockers/internal/core/ports"
)

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, ports.Event) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
