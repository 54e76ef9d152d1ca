package effect

import (
	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/tween"
)

// SwipeCall moves els by (DX, DY) from where they are now and back. The
// origin is read when the call is made, so repeated calls compose. A stop
// returns to x=0, y=0 unless StopOptions.Rest says otherwise.
func (a *Animator) SwipeCall(opts SwipeOptions, els ...component.Element) error {
	var c checker
	lo := c.loop(opts.Loop)
	c.number("dx", opts.DX)
	c.number("dy", opts.DY)
	c.duration("duration", opts.Duration)
	easeIn := c.ease("ease_in", opts.EaseIn)
	easeOut := c.ease("ease_out", opts.EaseOut)
	if c.err != nil {
		return c.err
	}

	return a.loop(KindSwipeCall, opts.TotalDuration, els, func(el component.Element) (plan, error) {
		m := el.Micro()
		target := tween.Weak(m)
		forward, back := tween.Values{}, tween.Values{}
		if opts.DX != 0 {
			forward[tween.X], back[tween.X] = m.X+opts.DX, m.X
		}
		if opts.DY != 0 {
			forward[tween.Y], back[tween.Y] = m.Y+opts.DY, m.Y
		}

		tl := tween.NewTimeline(lo)
		err := tl.Then(tween.Tween{Target: target, To: forward, Duration: opts.Duration, Ease: easeIn})
		if err != nil {
			return plan{}, err
		}
		err = tl.Then(tween.Tween{Target: target, To: back, Duration: opts.Duration, Ease: easeOut})
		if err != nil {
			return plan{}, err
		}
		return plan{tl: tl, rest: tween.Values{tween.X: 0, tween.Y: 0}}, nil
	})
}
