package effect

import (
	"fmt"

	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/ease"
	"github.com/milk9111/uifx/tween"
)

// JumpCall hops els up by opts.JumpHeight and back down to y=0 each cycle.
// Up is negative y.
func (a *Animator) JumpCall(opts JumpOptions, els ...component.Element) error {
	var c checker
	lo := c.loop(opts.Loop)
	c.number("jump_height", opts.JumpHeight)
	c.duration("duration_in", opts.DurationIn)
	c.duration("duration_out", opts.DurationOut)
	c.duration("squash_duration", opts.SquashDuration)
	c.number("squash", opts.Squash)
	easeIn := c.ease("ease_in", opts.EaseIn)
	easeOut := c.ease("ease_out", opts.EaseOut)
	if c.err == nil && (opts.Squash < 0 || opts.Squash >= 1) {
		c.err = fmt.Errorf("%w: squash=%v must be in [0,1)", ErrInvalidOption, opts.Squash)
	}
	if c.err != nil {
		return c.err
	}
	squash := opts.Squash > 0 && opts.SquashDuration > 0
	squashEase := ease.MustLookup(ease.PowerOut)

	return a.loop(KindJumpCall, opts.TotalDuration, els, func(el component.Element) (plan, error) {
		m := el.Micro()
		target := tween.Weak(m)
		tl := tween.NewTimeline(lo)
		rest := tween.Values{tween.Y: 0}
		at := 0.0
		if squash {
			legs := []tween.Tween{
				{
					Target:   target,
					To:       tween.Values{tween.ScaleX: 1 + opts.Squash, tween.ScaleY: 1 - opts.Squash},
					Duration: opts.SquashDuration,
					Ease:     squashEase,
				},
				{
					Target:   target,
					To:       tween.Values{tween.ScaleX: 1, tween.ScaleY: 1},
					Duration: opts.SquashDuration,
					Ease:     squashEase,
					Offset:   opts.SquashDuration,
				},
			}
			for _, tw := range legs {
				if err := tl.Add(tw); err != nil {
					return plan{}, err
				}
			}
			at = opts.SquashDuration
			rest[tween.ScaleX], rest[tween.ScaleY] = 1, 1
		}
		err := tl.Add(tween.Tween{
			Target:   target,
			To:       tween.Values{tween.Y: -opts.JumpHeight},
			Duration: opts.DurationIn,
			Ease:     easeIn,
			Offset:   at,
		})
		if err != nil {
			return plan{}, err
		}
		err = tl.Add(tween.Tween{
			Target:   target,
			To:       tween.Values{tween.Y: 0},
			Duration: opts.DurationOut,
			Ease:     easeOut,
			Offset:   at + opts.DurationIn,
		})
		if err != nil {
			return plan{}, err
		}
		return plan{tl: tl, rest: rest}, nil
	})
}
