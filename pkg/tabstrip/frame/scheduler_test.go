package frame

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDrainRunsNestedTasks(t *testing.T) {
	s := NewScheduler(epoch)
	var order []string

	s.Post(func() {
		order = append(order, "a")
		s.Post(func() { order = append(order, "c") })
	})
	s.Post(func() { order = append(order, "b") })

	s.Drain()

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.True(t, s.Idle())
}

func TestRequestFrameWaitsForTick(t *testing.T) {
	s := NewScheduler(epoch)
	ran := false
	s.RequestFrame(func() { ran = true })

	s.Drain()
	assert.False(t, ran, "frame callbacks must not run on drain")

	s.Tick(epoch.Add(16 * time.Millisecond))
	assert.True(t, ran)
	assert.Equal(t, uint64(1), s.Frames())
	assert.Equal(t, epoch.Add(16*time.Millisecond), s.Now())
}

func TestFrameRequestedDuringTickRunsNextTick(t *testing.T) {
	s := NewScheduler(epoch)
	var ticks []uint64

	s.RequestFrame(func() {
		ticks = append(ticks, s.Frames())
		s.RequestFrame(func() { ticks = append(ticks, s.Frames()) })
	})

	s.Tick(epoch.Add(time.Millisecond))
	require.Equal(t, []uint64{1}, ticks)

	s.Tick(epoch.Add(2 * time.Millisecond))
	assert.Equal(t, []uint64{1, 2}, ticks)
}

func TestTasksDrainBeforeAndBetweenFrameCallbacks(t *testing.T) {
	s := NewScheduler(epoch)
	var order []string

	s.Post(func() { order = append(order, "task-before") })
	s.RequestFrame(func() {
		order = append(order, "frame-1")
		s.Post(func() { order = append(order, "task-from-frame-1") })
	})
	s.RequestFrame(func() { order = append(order, "frame-2") })

	s.Tick(epoch.Add(time.Millisecond))

	assert.Equal(t, []string{"task-before", "frame-1", "task-from-frame-1", "frame-2"}, order)
}

func TestClockNeverMovesBackwards(t *testing.T) {
	s := NewScheduler(epoch)
	s.Tick(epoch.Add(time.Second))
	s.Tick(epoch)
	assert.Equal(t, epoch.Add(time.Second), s.Now())
}

func TestPostFromOtherGoroutines(t *testing.T) {
	s := NewScheduler(epoch)
	count := 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Post(func() { count++ })
		}()
	}
	wg.Wait()

	s.Drain()
	assert.Equal(t, 10, count)
}

func TestNilCallbacksIgnored(t *testing.T) {
	s := NewScheduler(epoch)
	s.Post(nil)
	s.RequestFrame(nil)
	assert.True(t, s.Idle())
}
