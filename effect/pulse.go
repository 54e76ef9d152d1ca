package effect

import (
	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/tween"
)

// Pulse scales els to opts.Scale and back to the scale they had when the
// pulse started, once per cycle.
func (a *Animator) Pulse(opts PulseOptions, els ...component.Element) error {
	var c checker
	lo := c.loop(opts.Loop)
	c.number("scale", opts.Scale)
	c.duration("duration_in", opts.DurationIn)
	c.duration("duration_out", opts.DurationOut)
	easeIn := c.ease("ease_in", opts.EaseIn)
	easeOut := c.ease("ease_out", opts.EaseOut)
	if c.err != nil {
		return c.err
	}

	return a.loop(KindPulse, opts.TotalDuration, els, func(el component.Element) (plan, error) {
		m := el.Micro()
		target := tween.Weak(m)
		tl := tween.NewTimeline(lo)
		err := tl.Then(tween.Tween{
			Target:   target,
			To:       tween.Values{tween.ScaleX: opts.Scale, tween.ScaleY: opts.Scale},
			Duration: opts.DurationIn,
			Ease:     easeIn,
		})
		if err != nil {
			return plan{}, err
		}
		err = tl.Then(tween.Tween{
			Target:   target,
			To:       tween.Values{tween.ScaleX: m.ScaleX, tween.ScaleY: m.ScaleY},
			Duration: opts.DurationOut,
			Ease:     easeOut,
		})
		if err != nil {
			return plan{}, err
		}
		return plan{tl: tl, rest: tween.Values{tween.ScaleX: 1, tween.ScaleY: 1}}, nil
	})
}
