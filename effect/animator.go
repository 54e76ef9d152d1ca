// Package effect is the catalog of UI attention and transition effects and
// the lifecycle manager that keeps looping effects exclusive per element.
//
// One-shot effects (Appear, Disappear, Click, Select) return a Completion.
// Looping effects (Pulse, JumpCall, SpinCall, SwipeCall, Shake) register one
// handle per element and run until the matching stop, their iteration count,
// or their TotalDuration ends them.
package effect

import (
	"fmt"

	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/tween"
)

// Animator plays catalog effects on one clock.
type Animator struct {
	clock   *tween.Clock
	manager *Manager
}

// New returns an Animator on clock, or on a fresh clock when nil.
func New(clock *tween.Clock) *Animator {
	if clock == nil {
		clock = tween.NewClock()
	}
	return &Animator{clock: clock, manager: NewManager(clock)}
}

func (a *Animator) Clock() *tween.Clock {
	return a.clock
}

func (a *Animator) Manager() *Manager {
	return a.manager
}

// Tick advances the clock by dt seconds.
func (a *Animator) Tick(dt float64) {
	a.clock.Tick(dt)
}

// play schedules a one-shot timeline and returns its completion.
func (a *Animator) play(tl *tween.Timeline) (*Completion, error) {
	c := newCompletion()
	tl.OnComplete(c.fire)
	if err := a.clock.Schedule(tl); err != nil {
		return nil, err
	}
	return c, nil
}

func checkElements(els []component.Element) error {
	for i, el := range els {
		if err := component.Check(el); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// plan is one element's looping timeline, built and validated before any
// element is started.
type plan struct {
	el   component.Element
	tl   *tween.Timeline
	rest tween.Values
}

type buildFunc func(el component.Element) (plan, error)

func (a *Animator) loop(kind Kind, total float64, els []component.Element, build buildFunc) error {
	if len(els) == 0 {
		return nil
	}
	if err := checkElements(els); err != nil {
		return err
	}
	plans := make([]plan, 0, len(els))
	for _, el := range els {
		p, err := build(el)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		if err := p.tl.Validate(); err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		p.el = el
		plans = append(plans, p)
	}
	for _, p := range plans {
		if err := a.manager.start(p.el, kind, p.tl, p.rest, total); err != nil {
			return err
		}
	}
	return nil
}

// Stop ends the looping effect kind on every element, tweening back to the
// rest values with opts. Elements without an active effect of that kind are
// left untouched.
func (a *Animator) Stop(kind Kind, opts StopOptions, els ...component.Element) error {
	r, err := opts.restore()
	if err != nil {
		return err
	}
	for _, el := range els {
		if err := a.manager.Stop(el, kind, r); err != nil {
			return err
		}
	}
	return nil
}

func (a *Animator) StopPulse(opts StopOptions, els ...component.Element) error {
	return a.Stop(KindPulse, opts, els...)
}

func (a *Animator) StopJumpCall(opts StopOptions, els ...component.Element) error {
	return a.Stop(KindJumpCall, opts, els...)
}

func (a *Animator) StopSpinCall(opts StopOptions, els ...component.Element) error {
	return a.Stop(KindSpinCall, opts, els...)
}

func (a *Animator) StopSwipeCall(opts StopOptions, els ...component.Element) error {
	return a.Stop(KindSwipeCall, opts, els...)
}

func (a *Animator) StopShake(opts StopOptions, els ...component.Element) error {
	return a.Stop(KindShake, opts, els...)
}

// Release stops every effect on el without restoring it.
func (a *Animator) Release(el component.Element) int {
	return a.manager.Release(el)
}
