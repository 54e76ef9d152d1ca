package effect

import (
	"fmt"

	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/tween"
)

// SwayLegs is the number of legs in one spin cycle: the ramp to +Rotation,
// one leg per sway and the return to 0.
func SwayLegs(swayCount int) int {
	return swayCount + 2
}

// SpinCall rocks els around their anchor. One cycle always lasts
// opts.Duration whatever the sway count.
func (a *Animator) SpinCall(opts SpinOptions, els ...component.Element) error {
	var c checker
	lo := c.loop(opts.Loop)
	c.number("anchor_x", opts.AnchorX)
	c.number("anchor_y", opts.AnchorY)
	c.number("rotation", opts.Rotation)
	c.number("damping", opts.Damping)
	c.duration("duration", opts.Duration)
	fn := c.ease("ease", opts.Ease)
	if c.err == nil && opts.SwayCount < 0 {
		c.err = fmt.Errorf("%w: sway_count=%d is negative", ErrInvalidOption, opts.SwayCount)
	}
	if c.err == nil && (opts.Damping < 0 || opts.Damping >= 1) {
		c.err = fmt.Errorf("%w: damping=%v must be in [0,1)", ErrInvalidOption, opts.Damping)
	}
	if c.err != nil {
		return c.err
	}
	leg := opts.Duration / float64(SwayLegs(opts.SwayCount))

	err := a.loop(KindSpinCall, opts.TotalDuration, els, func(el component.Element) (plan, error) {
		m := el.Micro()
		target := tween.Weak(m)
		tl := tween.NewTimeline(lo)
		angles := make([]float64, 0, SwayLegs(opts.SwayCount))
		r := opts.Rotation
		angles = append(angles, r)
		for i := 0; i < opts.SwayCount; i++ {
			r = -r * (1 - opts.Damping)
			angles = append(angles, r)
		}
		angles = append(angles, 0)
		for _, angle := range angles {
			err := tl.Then(tween.Tween{
				Target:   target,
				To:       tween.Values{tween.Rotation: angle},
				Duration: leg,
				Ease:     fn,
			})
			if err != nil {
				return plan{}, err
			}
		}
		return plan{tl: tl, rest: tween.Values{tween.Rotation: 0}}, nil
	})
	if err != nil {
		return err
	}
	for _, el := range els {
		el.Micro().AnchorX = opts.AnchorX
		el.Micro().AnchorY = opts.AnchorY
	}
	return nil
}
