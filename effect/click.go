package effect

import (
	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/tween"
)

// Click plays a press pose then returns to rest. The return leg starts only
// after the press leg has finished. Neutral offsets and unit scales are not
// animated.
func (a *Animator) Click(opts ClickOptions, els ...component.Element) (*Completion, error) {
	var c checker
	c.number("x_offset", opts.XOffset)
	c.number("y_offset", opts.YOffset)
	c.number("x_scale", opts.XScale)
	c.number("y_scale", opts.YScale)
	c.duration("delay", opts.Delay)
	c.duration("duration_in", opts.DurationIn)
	c.duration("duration_out", opts.DurationOut)
	easeIn := c.ease("ease_in", opts.EaseIn)
	easeOut := c.ease("ease_out", opts.EaseOut)
	if c.err != nil {
		return nil, c.err
	}
	if len(els) == 0 {
		return completed(), nil
	}
	if err := checkElements(els); err != nil {
		return nil, err
	}

	pressed, rest := tween.Values{}, tween.Values{}
	if opts.XOffset != 0 {
		pressed[tween.X], rest[tween.X] = opts.XOffset, 0
	}
	if opts.YOffset != 0 {
		pressed[tween.Y], rest[tween.Y] = opts.YOffset, 0
	}
	if opts.XScale != 1 {
		pressed[tween.ScaleX], rest[tween.ScaleX] = opts.XScale, 1
	}
	if opts.YScale != 1 {
		pressed[tween.ScaleY], rest[tween.ScaleY] = opts.YScale, 1
	}

	tl := tween.NewTimeline(tween.Options{})
	if len(pressed) == 0 {
		if err := tl.Wait(opts.Delay + opts.DurationIn + opts.DurationOut); err != nil {
			return nil, err
		}
		return a.play(tl)
	}
	for _, el := range els {
		err := tl.Add(tween.Tween{
			Target:   el.Micro(),
			To:       pressed,
			Duration: opts.DurationIn,
			Ease:     easeIn,
			Offset:   opts.Delay,
		})
		if err != nil {
			return nil, err
		}
		err = tl.Add(tween.Tween{
			Target:   el.Micro(),
			To:       rest,
			Duration: opts.DurationOut,
			Ease:     easeOut,
			Offset:   opts.Delay + opts.DurationIn,
		})
		if err != nil {
			return nil, err
		}
	}
	return a.play(tl)
}
