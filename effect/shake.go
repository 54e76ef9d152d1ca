package effect

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/ease"
	"github.com/milk9111/uifx/tween"
)

// MaxShakeHops bounds the hops in one shake cycle.
const MaxShakeHops = 10000

// Shake jitters els around their current position. Each cycle makes
// Duration*Frequency random hops within Radius, then returns to the origin.
// A stop returns to x=0, y=0 unless StopOptions.Rest says otherwise.
func (a *Animator) Shake(opts ShakeOptions, els ...component.Element) error {
	var c checker
	lo := c.loop(opts.Loop)
	c.duration("radius", opts.Radius)
	c.duration("duration", opts.Duration)
	c.number("frequency", opts.Frequency)
	if c.err == nil && opts.Frequency <= 0 {
		c.err = fmt.Errorf("%w: frequency=%v must be positive", ErrInvalidOption, opts.Frequency)
	}
	if hops := opts.Duration * opts.Frequency; c.err == nil && hops > MaxShakeHops {
		c.err = fmt.Errorf("%w: duration*frequency=%v exceeds %d hops", ErrInvalidOption, hops, MaxShakeHops)
	}
	if c.err != nil {
		return c.err
	}
	offsets := shakeOffsets(opts)
	leg := opts.Duration / float64(len(offsets)+1)
	fn := ease.MustLookup(ease.Power2Out)

	return a.loop(KindShake, opts.TotalDuration, els, func(el component.Element) (plan, error) {
		m := el.Micro()
		target := tween.Weak(m)
		origin := tween.Values{tween.X: m.X, tween.Y: m.Y}
		tl := tween.NewTimeline(lo)
		for _, off := range offsets {
			err := tl.Then(tween.Tween{
				Target:   target,
				To:       tween.Values{tween.X: m.X + off[0], tween.Y: m.Y + off[1]},
				Duration: leg,
				Ease:     fn,
			})
			if err != nil {
				return plan{}, err
			}
		}
		if err := tl.Then(tween.Tween{Target: target, To: origin, Duration: leg, Ease: fn}); err != nil {
			return plan{}, err
		}
		return plan{tl: tl, rest: tween.Values{tween.X: 0, tween.Y: 0}}, nil
	})
}

func shakeOffsets(opts ShakeOptions) [][2]float64 {
	n := max(1, int(math.Round(opts.Duration*opts.Frequency)))
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	out := make([][2]float64, n)
	for i := range out {
		angle := rng.Float64() * 2 * math.Pi
		r := rng.Float64() * opts.Radius
		out[i] = [2]float64{math.Cos(angle) * r, math.Sin(angle) * r}
	}
	return out
}
