package clock

import (
	"testing"
	"time"
)

// fakeWall is a controllable wall-clock source.
type fakeWall struct {
	now time.Time
}

func (f *fakeWall) Now() time.Time { return f.now }

func (f *fakeWall) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestClock(start time.Time) (*Clock, *fakeWall) {
	wall := &fakeWall{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	c := NewAt(start)
	c.SetNowFunc(wall.Now)
	return c, wall
}

func TestSample_RealtimeRate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c, wall := newTestClock(start)

	wall.Advance(90 * time.Second)

	got := c.Sample()
	want := start.Add(90 * time.Second)
	if !got.Equal(want) {
		t.Errorf("Sample() = %v, want %v", got, want)
	}
}

func TestSetRate_AnchorsAtChange(t *testing.T) {
	// After SetRate(2), 1000ms of wall time must advance simulated time by
	// 2000ms from the value at the moment SetRate was called, not from the
	// session start.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c, wall := newTestClock(start)

	wall.Advance(5 * time.Second) // runs at 1x
	c.SetRate(2)
	atChange := c.Sample()
	wall.Advance(1000 * time.Millisecond)

	got := c.Sample()
	want := atChange.Add(2000 * time.Millisecond)
	if !got.Equal(want) {
		t.Errorf("Sample() after SetRate(2) = %v, want %v", got, want)
	}
	if want.Sub(start) != 7*time.Second {
		t.Errorf("total simulated elapsed = %v, want 7s", want.Sub(start))
	}
}

func TestNegativeRate_RunsBackward(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c, wall := newTestClock(start)

	c.SetRate(-60)
	wall.Advance(time.Second)

	got := c.Sample()
	want := start.Add(-60 * time.Second)
	if !got.Equal(want) {
		t.Errorf("Sample() at rate -60 = %v, want %v", got, want)
	}
}

func TestTogglePause_FreezesAndResumes(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c, wall := newTestClock(start)

	wall.Advance(10 * time.Second)
	if paused := c.TogglePause(); !paused {
		t.Fatal("TogglePause() = false, want true")
	}

	frozen := c.Sample()
	wall.Advance(time.Hour)
	if got := c.Sample(); !got.Equal(frozen) {
		t.Errorf("paused clock advanced: %v != %v", got, frozen)
	}

	// Resuming must not replay the wall time spent paused.
	c.TogglePause()
	wall.Advance(3 * time.Second)
	want := frozen.Add(3 * time.Second)
	if got := c.Sample(); !got.Equal(want) {
		t.Errorf("Sample() after resume = %v, want %v", got, want)
	}
}

func TestSetTime_JumpsWithoutChangingRate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c, wall := newTestClock(start)
	c.SetRate(10)

	target := time.Date(1999, 8, 11, 11, 0, 0, 0, time.UTC)
	c.SetTime(target)

	if got := c.Sample(); !got.Equal(target) {
		t.Errorf("Sample() after SetTime = %v, want %v", got, target)
	}

	wall.Advance(time.Second)
	want := target.Add(10 * time.Second)
	if got := c.Sample(); !got.Equal(want) {
		t.Errorf("Sample() 1s after SetTime = %v, want %v (rate preserved)", got, want)
	}
	if c.Rate() != 10 {
		t.Errorf("Rate() = %v, want 10", c.Rate())
	}
}

func TestStep_RelativeJump(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c, _ := newTestClock(start)

	c.Step(24 * time.Hour)
	if got := c.Sample(); !got.Equal(start.Add(24 * time.Hour)) {
		t.Errorf("Sample() after Step(+24h) = %v", got)
	}

	c.Step(-48 * time.Hour)
	if got := c.Sample(); !got.Equal(start.Add(-24 * time.Hour)) {
		t.Errorf("Sample() after Step(-48h) = %v", got)
	}
}

func TestSample_NoSideEffects(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c, wall := newTestClock(start)
	wall.Advance(time.Minute)

	first := c.Sample()
	for i := 0; i < 100; i++ {
		if got := c.Sample(); !got.Equal(first) {
			t.Fatalf("repeated Sample() diverged: %v != %v", got, first)
		}
	}
}
