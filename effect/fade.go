package effect

import (
	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/tween"
)

// Appear fades and scales els in. Start values are written immediately, so
// the elements hold their from-pose during any delay.
func (a *Animator) Appear(opts FadeOptions, els ...component.Element) (*Completion, error) {
	return a.fade(opts, els)
}

// Disappear is Appear with the disappear defaults.
func (a *Animator) Disappear(opts FadeOptions, els ...component.Element) (*Completion, error) {
	return a.fade(opts, els)
}

func (a *Animator) fade(opts FadeOptions, els []component.Element) (*Completion, error) {
	var c checker
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"x_from", opts.XFrom}, {"x_to", opts.XTo},
		{"y_from", opts.YFrom}, {"y_to", opts.YTo},
		{"scale_from", opts.ScaleFrom}, {"scale_to", opts.ScaleTo},
		{"alpha_from", opts.AlphaFrom}, {"alpha_to", opts.AlphaTo},
	} {
		c.number(f.name, f.v)
	}
	c.duration("delay", opts.Delay)
	c.duration("duration", opts.Duration)
	microEase := c.ease("ease", opts.Ease)
	alphaEase := c.ease("alpha_ease", opts.AlphaEase)
	if c.err != nil {
		return nil, c.err
	}
	if len(els) == 0 {
		return completed(), nil
	}
	if err := checkElements(els); err != nil {
		return nil, err
	}

	from, to := tween.Values{}, tween.Values{}
	if opts.XFrom != opts.XTo {
		from[tween.X], to[tween.X] = opts.XFrom, opts.XTo
	}
	if opts.YFrom != opts.YTo {
		from[tween.Y], to[tween.Y] = opts.YFrom, opts.YTo
	}
	if opts.ScaleFrom != opts.ScaleTo {
		from[tween.ScaleX], to[tween.ScaleX] = opts.ScaleFrom, opts.ScaleTo
		from[tween.ScaleY], to[tween.ScaleY] = opts.ScaleFrom, opts.ScaleTo
	}
	animateAlpha := opts.AlphaFrom != opts.AlphaTo

	tl := tween.NewTimeline(tween.Options{Delay: opts.Delay})
	for _, el := range els {
		if len(to) > 0 {
			err := tl.Add(tween.Tween{Target: el.Micro(), From: from, To: to, Duration: opts.Duration, Ease: microEase})
			if err != nil {
				return nil, err
			}
		}
		if animateAlpha {
			err := tl.Add(tween.Tween{
				Target:   el.Color(),
				From:     tween.Values{tween.Alpha: opts.AlphaFrom},
				To:       tween.Values{tween.Alpha: opts.AlphaTo},
				Duration: opts.Duration,
				Ease:     alphaEase,
			})
			if err != nil {
				return nil, err
			}
		}
	}
	if err := tl.Validate(); err != nil {
		return nil, err
	}

	for _, el := range els {
		for p, v := range from {
			*el.Micro().Field(p) = v
		}
		if animateAlpha {
			el.Color().A = opts.AlphaFrom
		}
	}
	return a.play(tl)
}
