package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func countingScheduler(interval time.Duration) (*Scheduler, *atomic.Int32) {
	var counter atomic.Int32
	s := New(interval, func(ctx context.Context) {
		counter.Add(1)
	})
	return s, &counter
}

func TestScheduler_RunsPeriodically(t *testing.T) {
	s, counter := countingScheduler(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx, true)
	assert.True(t, s.IsRunning())

	assert.Eventually(t, func() bool {
		return counter.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)

	s.Stop()
	assert.False(t, s.IsRunning())

	// No further runs after Stop
	settled := counter.Load()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, settled, counter.Load())
}

func TestScheduler_FirstRunImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	immediate, immediateCount := countingScheduler(time.Hour)
	immediate.Start(ctx, true)
	defer immediate.Stop()

	assert.Eventually(t, func() bool {
		return immediateCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	delayed, delayedCount := countingScheduler(time.Hour)
	delayed.Start(ctx, false)
	defer delayed.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), delayedCount.Load())
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	s, _ := countingScheduler(50 * time.Millisecond)
	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestScheduler_DoubleStartIgnored(t *testing.T) {
	s, counter := countingScheduler(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx, true)
	s.Start(ctx, true)
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return counter.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// A second immediate run would have doubled the counter
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), counter.Load())
}

func TestScheduler_ParentContextCancellation(t *testing.T) {
	s, counter := countingScheduler(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx, true)

	assert.Eventually(t, func() bool {
		return counter.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(100 * time.Millisecond)

	settled := counter.Load()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, settled, counter.Load())
}
