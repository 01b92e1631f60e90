package services

import (
	"fmt"
	"sync"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
)

// AttemptLimiter counts wrong access codes per locker. After maxFailures misses
// inside window the locker rejects every code check for lockout, including a
// correct one. A limiter with maxFailures <= 0 never blocks.
//
// State is per process; replicas each keep their own counters.
type AttemptLimiter struct {
	mu          sync.Mutex
	maxFailures int
	window      time.Duration
	lockout     time.Duration
	now         func() time.Time
	entries     map[kernel.ID]*attemptEntry
}

type attemptEntry struct {
	failures    int
	windowStart time.Time
	lockedUntil time.Time
}

func NewAttemptLimiter(maxFailures int, window, lockout time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		maxFailures: maxFailures,
		window:      window,
		lockout:     lockout,
		now:         time.Now,
		entries:     make(map[kernel.ID]*attemptEntry),
	}
}

// WithClock replaces the time source. Intended for tests.
func (l *AttemptLimiter) WithClock(now func() time.Time) *AttemptLimiter {
	l.now = now
	return l
}

func (l *AttemptLimiter) Enabled() bool {
	return l != nil && l.maxFailures > 0
}

// Check returns a TooManyAttemptsError while lockerID is locked out.
func (l *AttemptLimiter) Check(lockerID kernel.ID) error {
	if !l.Enabled() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[lockerID]
	if !ok {
		return nil
	}

	now := l.now()
	if now.Before(entry.lockedUntil) {
		return errs.NewTooManyAttemptsError(fmt.Sprintf("locker %s", lockerID), entry.lockedUntil.Sub(now))
	}
	return nil
}

// RecordFailure counts one wrong code and starts a lockout once the limit is reached.
func (l *AttemptLimiter) RecordFailure(lockerID kernel.ID) {
	if !l.Enabled() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[lockerID]
	if !ok || now.Sub(entry.windowStart) > l.window {
		entry = &attemptEntry{windowStart: now}
		l.entries[lockerID] = entry
	}

	entry.failures++
	if entry.failures >= l.maxFailures {
		entry.lockedUntil = now.Add(l.lockout)
		entry.failures = 0
		entry.windowStart = now
	}
}

// Reset forgets every failure for lockerID, typically after a correct code.
func (l *AttemptLimiter) Reset(lockerID kernel.ID) {
	if !l.Enabled() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, lockerID)
}

// Sweep drops entries whose window and lockout have both passed and reports how
// many were removed.
func (l *AttemptLimiter) Sweep() int {
	if !l.Enabled() {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for id, entry := range l.entries {
		if now.Sub(entry.windowStart) > l.window && !now.Before(entry.lockedUntil) {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

// Tracked reports how many lockers currently have counters.
func (l *AttemptLimiter) Tracked() int {
	if !l.Enabled() {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// LockedOut reports how many lockers are inside a lockout right now.
func (l *AttemptLimiter) LockedOut() int {
	if !l.Enabled() {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	locked := 0
	for _, entry := range l.entries {
		if now.Before(entry.lockedUntil) {
			locked++
		}
	}
	return locked
}
