package services_test

import (
	"sync"
	"testing"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLimiter(clock *fakeClock) *services.AttemptLimiter {
	return services.NewAttemptLimiter(3, 10*time.Minute, 5*time.Minute).WithClock(clock.Now)
}

func TestAttemptLimiter_LocksOutAfterMaxFailures(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newLimiter(clock)
	id := kernel.ID(1)

	limiter.RecordFailure(id)
	limiter.RecordFailure(id)
	require.NoError(t, limiter.Check(id))

	limiter.RecordFailure(id)
	err := limiter.Check(id)
	require.ErrorIs(t, err, errs.ErrTooManyAttempts)
	require.ErrorIs(t, err, errs.ErrInvalidCredential)

	require.NoError(t, limiter.Check(kernel.ID(2)), "other lockers are unaffected")

	clock.Advance(5 * time.Minute)
	require.NoError(t, limiter.Check(id))
}

func TestAttemptLimiter_WindowExpires(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newLimiter(clock)
	id := kernel.ID(1)

	limiter.RecordFailure(id)
	limiter.RecordFailure(id)
	clock.Advance(11 * time.Minute)
	limiter.RecordFailure(id)

	require.NoError(t, limiter.Check(id))
}

func TestAttemptLimiter_Reset(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	limiter := newLimiter(clock)
	id := kernel.ID(9)

	limiter.RecordFailure(id)
	limiter.RecordFailure(id)
	limiter.Reset(id)
	limiter.RecordFailure(id)

	require.NoError(t, limiter.Check(id))
	assert.Equal(t, 1, limiter.Tracked())
}

func TestAttemptLimiter_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newLimiter(clock)

	limiter.RecordFailure(1)
	for range 3 {
		limiter.RecordFailure(2)
	}

	clock.Advance(11 * time.Minute)
	limiter.RecordFailure(3)

	assert.Equal(t, 2, limiter.Sweep())
	assert.Equal(t, 1, limiter.Tracked())
}

func TestAttemptLimiter_Disabled(t *testing.T) {
	limiter := services.NewAttemptLimiter(0, time.Minute, time.Minute)

	for range 100 {
		limiter.RecordFailure(1)
	}

	assert.False(t, limiter.Enabled())
	require.NoError(t, limiter.Check(1))
	assert.Equal(t, 0, limiter.Sweep())

	var nilLimiter *services.AttemptLimiter
	require.NoError(t, nilLimiter.Check(1))
	nilLimiter.RecordFailure(1)
	nilLimiter.Reset(1)
}

func TestAttemptLimiter_LockedOut(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newLimiter(clock)

	for range 3 {
		limiter.RecordFailure(kernel.ID(1))
	}
	limiter.RecordFailure(kernel.ID(2))

	assert.Equal(t, 1, limiter.LockedOut())
	assert.Equal(t, 2, limiter.Tracked())

	clock.Advance(6 * time.Minute)
	assert.Equal(t, 0, limiter.LockedOut())
}
