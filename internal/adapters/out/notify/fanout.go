package notify

import (
	"context"
	"errors"

	"lockers/internal/core/ports"
)

// Fanout delivers every notice to all channels. One failing channel does not
// stop the others.
type Fanout []ports.Notifier

func (f Fanout) NotifyAccessCode(ctx context.Context, notice ports.AccessCodeNotice) error {
	var result error
	for _, n := range f {
		if err := n.NotifyAccessCode(ctx, notice); err != nil {
			result = errors.Join(result, err)
		}
	}
	return result
}
