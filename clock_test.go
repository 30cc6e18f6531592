package backdrop

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameClockNotRunningUntilStarted(t *testing.T) {
	calls := 0
	clock := NewFrameClock(func(now time.Duration) { calls++ })

	assert.False(t, clock.Tick(0))
	assert.Equal(t, 0, calls)

	clock.Start()
	assert.True(t, clock.Running())
	assert.True(t, clock.Tick(time.Millisecond))
	assert.True(t, clock.Tick(time.Millisecond*2))
	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(2), clock.Frames())
}

func TestFrameClockPassesTime(t *testing.T) {
	var got []time.Duration
	clock := NewFrameClock(func(now time.Duration) { got = append(got, now) })
	clock.Start()

	clock.Tick(16 * time.Millisecond)
	clock.Tick(33 * time.Millisecond)

	assert.Equal(t, []time.Duration{16 * time.Millisecond, 33 * time.Millisecond}, got)
}

func TestFrameClockDropsTickWhileFrameInFlight(t *testing.T) {
	var clock *FrameClock

	nested := true
	clock = NewFrameClock(func(now time.Duration) {
		// refresh arriving while this frame still paints
		nested = clock.Tick(now)
	})
	clock.Start()

	require.True(t, clock.Tick(0))
	assert.False(t, nested)
	assert.Equal(t, uint64(1), clock.Frames())
}

func TestFrameClockConcurrentTicksRunOneAtATime(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	clock := NewFrameClock(func(now time.Duration) {
		close(entered)
		<-release
	})
	clock.Start()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		clock.Tick(0)
	}()

	<-entered
	assert.False(t, clock.Tick(time.Millisecond))

	close(release)
	wg.Wait()

	assert.Equal(t, uint64(1), clock.Frames())
}

func TestFrameClockStopWaitsForFrameInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var finished bool

	clock := NewFrameClock(func(now time.Duration) {
		close(entered)
		<-release
		finished = true
	})
	clock.Start()

	go clock.Tick(0)
	<-entered

	stopped := make(chan struct{})
	go func() {
		clock.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while frame was still painting")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-stopped

	assert.True(t, finished)
	assert.False(t, clock.Running())
	assert.False(t, clock.Tick(time.Second))
	assert.Equal(t, uint64(1), clock.Frames())
}

func TestFrameClockRestart(t *testing.T) {
	calls := 0
	clock := NewFrameClock(func(now time.Duration) { calls++ })

	clock.Start()
	clock.Tick(0)
	clock.Stop()
	clock.Tick(0)
	clock.Start()
	clock.Tick(0)

	assert.Equal(t, 2, calls)
}

func TestTimerNormalize(t *testing.T) {
	timer := Timer{Duration: time.Second}

	timer.TickUp(time.Millisecond * 250)
	assert.InDelta(t, 0.25, timer.Normalize(), 1e-9)

	timer.TickUp(time.Second * 2)
	timer.ClampCurrent()
	assert.Equal(t, time.Second, timer.Current)
	assert.Equal(t, 1.0, timer.Normalize())

	timer.TickDown(time.Second * 3)
	timer.ClampCurrent()
	assert.Equal(t, time.Duration(0), timer.Current)

	zero := Timer{}
	assert.Equal(t, 1.0, zero.Normalize())
}
