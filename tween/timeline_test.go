package tween

import (
	"errors"
	"math"
	"runtime"
	"testing"

	"github.com/milk9111/uifx/ease"
)

type bag struct {
	x, y, sx, sy float64
}

func newBag() *bag {
	return &bag{sx: 1, sy: 1}
}

func (b *bag) Field(p Prop) *float64 {
	switch p {
	case X:
		return &b.x
	case Y:
		return &b.y
	case ScaleX:
		return &b.sx
	case ScaleY:
		return &b.sy
	}
	return nil
}

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func tickN(c *Clock, dt float64, n int) {
	for i := 0; i < n; i++ {
		c.Tick(dt)
	}
}

func TestTweenInterpolatesAndLandsExactly(t *testing.T) {
	c := NewClock()
	b := newBag()
	if _, err := c.To(Tween{Target: b, To: Values{X: 10}, Duration: 1}); err != nil {
		t.Fatalf("To: %v", err)
	}

	c.Tick(0.5)
	if !near(b.x, 5) {
		t.Fatalf("expected x=5 at half time, got %v", b.x)
	}
	c.Tick(0.5)
	if b.x != 10 {
		t.Fatalf("expected exact x=10 at end, got %v", b.x)
	}
	if c.Len() != 0 {
		t.Fatalf("finished timeline should leave the clock, Len=%d", c.Len())
	}
}

func TestZeroDurationResolvesImmediately(t *testing.T) {
	c := NewClock()
	b := newBag()
	if _, err := c.To(Tween{Target: b, To: Values{Y: -3}}); err != nil {
		t.Fatalf("To: %v", err)
	}
	c.Tick(0)
	if b.y != -3 {
		t.Fatalf("expected y=-3, got %v", b.y)
	}
}

func TestPartialTweenLeavesOtherKeysAlone(t *testing.T) {
	c := NewClock()
	b := newBag()
	b.sx = 0.7
	if _, err := c.To(Tween{Target: b, To: Values{X: 4}, Duration: 0.25}); err != nil {
		t.Fatalf("To: %v", err)
	}
	b.sx = 0.9
	tickN(c, 0.125, 4)
	if b.sx != 0.9 {
		t.Fatalf("scale_x was written by an x-only tween: %v", b.sx)
	}
}

func TestFromCapturedAtScheduleTime(t *testing.T) {
	c := NewClock()
	b := newBag()
	tl := NewTimeline(Options{Delay: 1})
	if err := tl.Add(Tween{Target: b, To: Values{X: 10}, Duration: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Schedule(tl); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	// A write during the delay must not move the captured start.
	b.x = 100
	c.Tick(1.5)
	if !near(b.x, 5) {
		t.Fatalf("expected x=5 (from captured 0), got %v", b.x)
	}
}

func TestChainedTweensStartFromPreviousEnd(t *testing.T) {
	c := NewClock()
	b := newBag()
	b.x = 1
	tl := NewTimeline(Options{})
	if err := tl.Then(Tween{Target: b, To: Values{X: 2}, Duration: 1}); err != nil {
		t.Fatalf("Then: %v", err)
	}
	if err := tl.Then(Tween{Target: b, To: Values{X: 1}, Duration: 1}); err != nil {
		t.Fatalf("Then: %v", err)
	}
	if tl.Duration() != 2 {
		t.Fatalf("expected cycle length 2, got %v", tl.Duration())
	}
	if err := c.Schedule(tl); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	c.Tick(0.5)
	if !near(b.x, 1.5) {
		t.Fatalf("first leg midpoint: got %v", b.x)
	}
	c.Tick(1)
	if !near(b.x, 1.5) {
		t.Fatalf("second leg midpoint: got %v", b.x)
	}
	c.Tick(0.5)
	if b.x != 1 {
		t.Fatalf("expected exact return to 1, got %v", b.x)
	}
}

func TestParallelTweensShareProgress(t *testing.T) {
	c := NewClock()
	a, b := newBag(), newBag()
	tl := NewTimeline(Options{})
	for _, target := range []*bag{a, b} {
		if err := tl.Add(Tween{Target: target, To: Values{X: 8, Y: 4}, Duration: 1, Ease: ease.MustLookup(ease.PowerInOut)}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := c.Schedule(tl); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	c.Tick(0.25)
	if a.x != b.x || a.y != b.y {
		t.Fatalf("parallel tweens diverged: a=%+v b=%+v", a, b)
	}
	if !near(a.x/8, a.y/4) {
		t.Fatalf("keys of one tween used different progress: x=%v y=%v", a.x, a.y)
	}
}

func TestFiniteRepeatCompletesOnce(t *testing.T) {
	c := NewClock()
	b := newBag()
	tl := NewTimeline(Options{Repeat: 2, RepeatDelay: 0.5})
	if err := tl.Then(Tween{Target: b, To: Values{X: 1}, Duration: 0.5}); err != nil {
		t.Fatalf("Then: %v", err)
	}
	if err := tl.Then(Tween{Target: b, To: Values{X: 0}, Duration: 0.5}); err != nil {
		t.Fatalf("Then: %v", err)
	}
	calls := 0
	tl.OnComplete(func() { calls++ })
	if err := c.Schedule(tl); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if got := tl.TotalDuration(); got != 4 {
		t.Fatalf("expected total 3 cycles + 2 delays = 4s, got %v", got)
	}

	tickN(c, 0.25, 15)
	if tl.Done() || calls != 0 {
		t.Fatalf("completed early at %vs", c.Now())
	}
	if tl.Iteration() != 2 {
		t.Fatalf("expected to be in the last cycle, got iteration %d", tl.Iteration())
	}
	c.Tick(0.25)
	if !tl.Done() || calls != 1 {
		t.Fatalf("expected completion at 4s, done=%v calls=%d", tl.Done(), calls)
	}
	tickN(c, 0.25, 4)
	if calls != 1 {
		t.Fatalf("OnComplete fired %d times", calls)
	}
}

func TestInfiniteNeverCompletes(t *testing.T) {
	c := NewClock()
	b := newBag()
	tl := NewTimeline(Options{Repeat: Infinite, RepeatDelay: 0.5})
	if err := tl.Add(Tween{Target: b, To: Values{ScaleX: 2}, Duration: 0.5}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	fired := false
	tl.OnComplete(func() { fired = true })
	if err := c.Schedule(tl); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	tickN(c, 0.25, 400)
	if fired || tl.Done() || !tl.Live() {
		t.Fatalf("infinite timeline finished: fired=%v done=%v", fired, tl.Done())
	}
	if !math.IsInf(tl.TotalDuration(), 1) {
		t.Fatalf("expected infinite total duration")
	}
	// A huge frame skips whole cycles without replaying each one.
	c.Tick(1e6)
	if !tl.Live() {
		t.Fatalf("large tick ended an infinite timeline")
	}
}

func TestDelayFirstHoldsBeforeFirstCycle(t *testing.T) {
	c := NewClock()
	b := newBag()
	tl := NewTimeline(Options{Repeat: Infinite, RepeatDelay: 2, DelayFirst: true})
	if err := tl.Then(Tween{Target: b, To: Values{ScaleX: 1.5}, Duration: 0.5}); err != nil {
		t.Fatalf("Then: %v", err)
	}
	if err := tl.Then(Tween{Target: b, To: Values{ScaleX: 1}, Duration: 0.5}); err != nil {
		t.Fatalf("Then: %v", err)
	}
	if err := c.Schedule(tl); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	b.sx = 1.25 // sentinel: any engine write would overwrite it
	tickN(c, 0.25, 7)
	if b.sx != 1.25 {
		t.Fatalf("field written during the leading delay: %v", b.sx)
	}
	tickN(c, 0.25, 3)
	if b.sx != 1.5 {
		t.Fatalf("expected peak 1.5 at 2.5s, got %v", b.sx)
	}
}

func TestKillStopsWithoutRewindOrCallback(t *testing.T) {
	c := NewClock()
	b := newBag()
	tl := NewTimeline(Options{})
	if err := tl.Add(Tween{Target: b, To: Values{X: 10}, Duration: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	fired := false
	tl.OnComplete(func() { fired = true })
	if err := c.Schedule(tl); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	c.Tick(0.5)
	tl.Kill()
	tl.Kill()
	c.Tick(1)
	if !near(b.x, 5) {
		t.Fatalf("kill should freeze x at 5, got %v", b.x)
	}
	if fired {
		t.Fatalf("OnComplete ran for a killed timeline")
	}
	if c.Len() != 0 {
		t.Fatalf("killed timeline still on the clock")
	}
}

func TestScheduleFromCallbackStartsNextTick(t *testing.T) {
	c := NewClock()
	b := newBag()
	first := NewTimeline(Options{})
	if err := first.Add(Tween{Target: b, To: Values{X: 1}, Duration: 0.5}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var second *Timeline
	first.OnComplete(func() {
		var err error
		second, err = c.To(Tween{Target: b, To: Values{X: 3}, Duration: 0.5})
		if err != nil {
			t.Errorf("nested To: %v", err)
		}
	})
	if err := c.Schedule(first); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	c.Tick(0.5)
	if b.x != 1 || second == nil {
		t.Fatalf("expected first tween done and second scheduled, x=%v", b.x)
	}
	c.Tick(0.25)
	if !near(b.x, 2) {
		t.Fatalf("second tween should start from 1 and reach 2 at midpoint, got %v", b.x)
	}
}

func TestAfterRunsOnTheClock(t *testing.T) {
	c := NewClock()
	ran := 0
	if _, err := c.After(1, func() { ran++ }); err != nil {
		t.Fatalf("After: %v", err)
	}
	tickN(c, 0.25, 3)
	if ran != 0 {
		t.Fatalf("After fired early")
	}
	c.Tick(0.25)
	if ran != 1 {
		t.Fatalf("After did not fire at 1s")
	}
}

func TestValidation(t *testing.T) {
	b := newBag()
	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"negative_duration", func() error {
			return NewTimeline(Options{}).Add(Tween{Target: b, To: Values{X: 1}, Duration: -1})
		}, ErrNegativeDuration},
		{"nan_duration", func() error {
			return NewTimeline(Options{}).Add(Tween{Target: b, To: Values{X: 1}, Duration: math.NaN()})
		}, ErrNonFinite},
		{"inf_value", func() error {
			return NewTimeline(Options{}).Add(Tween{Target: b, To: Values{X: math.Inf(1)}, Duration: 1})
		}, ErrNonFinite},
		{"nil_target", func() error {
			return NewTimeline(Options{}).Add(Tween{To: Values{X: 1}, Duration: 1})
		}, ErrNilTarget},
		{"unsupported_prop", func() error {
			return NewTimeline(Options{}).Add(Tween{Target: b, To: Values{Rotation: 1}, Duration: 1})
		}, ErrUnknownProp},
		{"negative_wait", func() error {
			return NewTimeline(Options{}).Wait(-0.5)
		}, ErrNegativeDuration},
		{"zero_length_loop", func() error {
			return NewClock().Schedule(NewTimeline(Options{Repeat: Infinite}))
		}, ErrZeroLengthLoop},
		{"bad_repeat", func() error {
			return NewClock().Schedule(NewTimeline(Options{Repeat: -2}))
		}, ErrInvalidRepeat},
		{"negative_delay", func() error {
			return NewClock().Schedule(NewTimeline(Options{Delay: -1}))
		}, ErrNegativeDuration},
		{"double_schedule", func() error {
			c := NewClock()
			tl := NewTimeline(Options{})
			if err := c.Schedule(tl); err != nil {
				return err
			}
			return c.Schedule(tl)
		}, ErrAlreadyScheduled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEmptyFiniteTimelineCompletesOnFirstTick(t *testing.T) {
	c := NewClock()
	tl := NewTimeline(Options{})
	done := false
	tl.OnComplete(func() { done = true })
	if err := c.Schedule(tl); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	c.Tick(0)
	if !done {
		t.Fatalf("empty timeline should complete immediately")
	}
}

func TestParseProp(t *testing.T) {
	cases := map[string]Prop{"x": X, "scale_x": ScaleX, "scaleY": ScaleY, "angle": Rotation, "opacity": Alpha}
	for in, want := range cases {
		got, err := ParseProp(in)
		if err != nil || got != want {
			t.Fatalf("ParseProp(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseProp("skew"); !errors.Is(err, ErrUnknownProp) {
		t.Fatalf("expected ErrUnknownProp, got %v", err)
	}
}

func TestWeakTargetWritesWhileReachable(t *testing.T) {
	c := NewClock()
	b := newBag()
	if _, err := c.To(Tween{Target: Weak(b), To: Values{X: 4}, Duration: 1}); err != nil {
		t.Fatalf("To: %v", err)
	}
	c.Tick(0.5)
	if !near(b.x, 2) {
		t.Fatalf("expected x=2, got %v", b.x)
	}
	c.Tick(0.5)
	if b.x != 4 {
		t.Fatalf("expected exact x=4, got %v", b.x)
	}
}

func TestWeakTargetSkipsCollectedBag(t *testing.T) {
	c := NewClock()
	tl := NewTimeline(Options{Repeat: Infinite})
	func() {
		b := newBag()
		if err := tl.Add(Tween{Target: Weak(b), To: Values{X: 4}, Duration: 1}); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if err := c.Schedule(tl); err != nil {
			t.Fatalf("Schedule: %v", err)
		}
	}()
	runtime.GC()
	runtime.GC()
	tickN(c, 0.25, 8)
	if tl.Killed() || c.Len() != 1 {
		t.Fatalf("timeline on a collected bag should keep running harmlessly")
	}
}
