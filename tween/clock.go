package tween

import "github.com/milk9111/uifx/common"

// Clock advances every scheduled timeline once per tick. It is driven by the
// host's frame loop and is not safe for concurrent use.
type Clock struct {
	live    []*Timeline
	pending []*Timeline
	ticking bool
	now     float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Schedule validates tl, captures its omitted from-values from the live
// targets and starts playing it on the next tick.
func (c *Clock) Schedule(tl *Timeline) error {
	if tl == nil {
		return ErrNilTimeline
	}
	if tl.scheduled {
		return ErrAlreadyScheduled
	}
	if err := tl.validate(); err != nil {
		return err
	}
	tl.capture()
	tl.scheduled = true
	if tl.killed {
		return nil
	}
	if c.ticking {
		c.pending = append(c.pending, tl)
		return nil
	}
	c.live = append(c.live, tl)
	return nil
}

// To schedules a single tween as a one-shot timeline.
func (c *Clock) To(tw Tween) (*Timeline, error) {
	tl := NewTimeline(Options{})
	if err := tl.Add(tw); err != nil {
		return nil, err
	}
	if err := c.Schedule(tl); err != nil {
		return nil, err
	}
	return tl, nil
}

// After schedules fn to run once d seconds from now, on this clock.
func (c *Clock) After(d float64, fn func()) (*Timeline, error) {
	tl := NewTimeline(Options{})
	if err := tl.Wait(d); err != nil {
		return nil, err
	}
	tl.OnComplete(fn)
	if err := c.Schedule(tl); err != nil {
		return nil, err
	}
	return tl, nil
}

// Tick advances all live timelines by dt seconds. Timelines scheduled from
// inside a callback start on the following tick. Negative or non-finite dt
// is ignored.
func (c *Clock) Tick(dt float64) {
	if c == nil || c.ticking || dt < 0 || !common.Finite(dt) {
		return
	}
	c.now += dt
	c.ticking = true
	for _, tl := range c.live {
		tl.advance(dt)
	}
	c.ticking = false

	kept := c.live[:0]
	for _, tl := range c.live {
		if !tl.killed && !tl.done {
			kept = append(kept, tl)
		}
	}
	for i := len(kept); i < len(c.live); i++ {
		c.live[i] = nil
	}
	c.live = kept
	for _, tl := range c.pending {
		if !tl.killed {
			c.live = append(c.live, tl)
		}
	}
	clear(c.pending)
	c.pending = c.pending[:0]
}

// Len is the number of timelines still playing or waiting to start.
func (c *Clock) Len() int {
	if c == nil {
		return 0
	}
	n := len(c.pending)
	for _, tl := range c.live {
		if !tl.killed && !tl.done {
			n++
		}
	}
	return n
}

// Now is the total time advanced so far, in seconds.
func (c *Clock) Now() float64 {
	if c == nil {
		return 0
	}
	return c.now
}
