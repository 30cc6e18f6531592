package backdrop

import (
	"sync"
	"sync/atomic"
	"time"

	"backdrop/misc"
)

// FrameClock runs a paint callback once per host refresh.
//
// Host calls Tick on every display refresh (ebiten Draw, a ticker, a test loop).
// Tick is dropped when clock is stopped or when another callback is still running,
// so there is never more than one frame in flight.
//
// Stop must not be called from inside the callback.
type FrameClock struct {
	callback func(now time.Duration)

	running atomic.Bool
	frames  atomic.Uint64

	// held while callback runs
	inFlight sync.Mutex
}

func NewFrameClock(callback func(now time.Duration)) *FrameClock {
	return &FrameClock{
		callback: callback,
	}
}

func (c *FrameClock) Start() {
	c.running.Store(true)
}

// Stop cancels every future tick and waits for the frame in flight to finish.
// No callback runs after Stop returns.
func (c *FrameClock) Stop() {
	c.running.Store(false)

	c.inFlight.Lock()
	c.inFlight.Unlock()
}

func (c *FrameClock) Running() bool {
	return c.running.Load()
}

// Frames returns how many callbacks ran to completion.
func (c *FrameClock) Frames() uint64 {
	return c.frames.Load()
}

// Tick runs callback if clock is running and idle.
// Returns true if callback ran.
func (c *FrameClock) Tick(now time.Duration) bool {
	if !c.running.Load() {
		return false
	}

	if !c.inFlight.TryLock() {
		return false
	}
	defer c.inFlight.Unlock()

	// Stop might have won the race
	if !c.running.Load() || c.callback == nil {
		return false
	}

	c.callback(now)
	c.frames.Add(1)

	return true
}

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp(delta time.Duration) {
	t.Current += delta
}

func (t *Timer) TickDown(delta time.Duration) {
	t.Current -= delta
}

func (t *Timer) ClampCurrent() {
	t.Current = Clamp(t.Current, 0, t.Duration)
}

func (t *Timer) Normalize() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return Clamp(f64(t.Current)/f64(t.Duration), 0, 1)
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	misc.InfoLogger.Infof("\"%v\" took %v", p.Name, time.Since(p.Start))
}
