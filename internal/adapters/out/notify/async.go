package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"lockers/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrClosed    = errors.New("notification queue is closed")
)

// Async hands notices to a pool of workers so the request that booked the
// locker does not wait on SMS or e-mail delivery.
//
// Delivery failures are logged and counted; they never reach the caller.
type Async struct {
	next     ports.Notifier
	queue    chan ports.AccessCodeNotice
	failures prometheus.Counter
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsync starts workers goroutines reading from a queue of size capacity.
// failures may be nil.
func NewAsync(next ports.Notifier, workers, capacity int, failures prometheus.Counter, logger *slog.Logger) *Async {
	if workers < 1 {
		workers = 1
	}
	if capacity < 1 {
		capacity = 1
	}

	a := &Async{
		next:     next,
		queue:    make(chan ports.AccessCodeNotice, capacity),
		failures: failures,
		logger:   logger.With("component", "notify"),
	}

	a.wg.Add(workers)
	for range workers {
		go a.work()
	}
	return a
}

// NotifyAccessCode enqueues notice without blocking.
func (a *Async) NotifyAccessCode(_ context.Context, notice ports.AccessCodeNotice) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return ErrClosed
	}

	select {
	case a.queue <- notice:
		return nil
	default:
		a.countFailure()
		return ErrQueueFull
	}
}

// Close stops accepting notices and waits until the queue is drained or ctx ends.
func (a *Async) Close(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Async) work() {
	defer a.wg.Done()

	for notice := range a.queue {
		if err := a.next.NotifyAccessCode(context.Background(), notice); err != nil {
			a.countFailure()
			a.logger.Warn("access code delivery failed",
				"locker_id", notice.LockerID.String(),
				"customer_id", notice.CustomerID.String(),
				"error", err)
		}
	}
}

func (a *Async) countFailure() {
	if a.failures != nil {
		a.failures.Inc()
	}
}
