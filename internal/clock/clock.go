// Package clock provides the virtual clock that drives the simulated sky.
package clock

import (
	"sync"
	"time"
)

// State describes the virtual clock at a single anchor point.
// Simulated time at wall time `now` is:
//
//	paused ? base : base + (now - anchor) * rate
type State struct {
	Base   time.Time // simulated time at the anchor
	Anchor time.Time // wall time of the last anchor update
	Rate   float64   // rate multiplier (negative runs backward)
	Paused bool
}

// Clock is a virtual clock that can run at an arbitrary rate relative to
// wall-clock time, run backward, be paused, or be set directly.
//
// Every mutation first folds the wall time elapsed since the last anchor
// into the base time and re-anchors at the current instant. Without that,
// changing the rate would retroactively rescale time already elapsed and
// the simulated clock would jump.
type Clock struct {
	mu    sync.Mutex
	state State
	nowFn func() time.Time
}

// New creates a clock running at 1x starting from the current wall time.
func New() *Clock {
	return NewAt(time.Now())
}

// NewAt creates a clock running at 1x starting from the given simulated time.
func NewAt(start time.Time) *Clock {
	c := &Clock{nowFn: time.Now}
	c.state = State{Base: start, Anchor: c.nowFn(), Rate: 1.0}
	return c
}

// SetNowFunc replaces the wall-clock source. Used by tests.
func (c *Clock) SetNowFunc(fn func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowFn = fn
	c.state.Anchor = fn()
}

// Sample returns the current simulated time. It has no side effects and is
// cheap enough to call on every rendered frame.
func (c *Clock) Sample() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sampleLocked()
}

func (c *Clock) sampleLocked() time.Time {
	if c.state.Paused {
		return c.state.Base
	}
	elapsed := c.nowFn().Sub(c.state.Anchor)
	scaled := time.Duration(float64(elapsed) * c.state.Rate)
	return c.state.Base.Add(scaled)
}

// anchorLocked folds elapsed wall time into the base and re-anchors now.
func (c *Clock) anchorLocked() {
	c.state.Base = c.sampleLocked()
	c.state.Anchor = c.nowFn()
}

// SetRate changes the rate multiplier. The simulated time is continuous
// across the change.
func (c *Clock) SetRate(rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchorLocked()
	c.state.Rate = rate
}

// Rate returns the current rate multiplier.
func (c *Clock) Rate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Rate
}

// TogglePause flips the paused flag and returns the new value. A paused
// clock reports the same simulated time regardless of wall-clock progress.
func (c *Clock) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchorLocked()
	c.state.Paused = !c.state.Paused
	return c.state.Paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Paused
}

// SetTime jumps the simulated time to t without changing rate or pause state.
func (c *Clock) SetTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchorLocked()
	c.state.Base = t
}

// Step advances (or rewinds, if negative) the simulated time by d.
func (c *Clock) Step(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchorLocked()
	c.state.Base = c.state.Base.Add(d)
}

// Snapshot returns a copy of the internal state, mainly for display.
func (c *Clock) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
