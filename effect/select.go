package effect

import (
	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/tween"
)

// Select scales els up to opts.Scale when selected and back to 1 otherwise.
func (a *Animator) Select(opts SelectOptions, els ...component.Element) (*Completion, error) {
	var c checker
	c.number("scale", opts.Scale)
	c.number("anchor_x", opts.AnchorX)
	c.number("anchor_y", opts.AnchorY)
	c.duration("duration", opts.Duration)
	fn := c.ease("ease", opts.Ease)
	if c.err != nil {
		return nil, c.err
	}
	if len(els) == 0 {
		return completed(), nil
	}
	if err := checkElements(els); err != nil {
		return nil, err
	}

	target := 1.0
	if opts.Selected {
		target = opts.Scale
	}
	tl := tween.NewTimeline(tween.Options{})
	for _, el := range els {
		err := tl.Add(tween.Tween{
			Target:   el.Micro(),
			To:       tween.Values{tween.ScaleX: target, tween.ScaleY: target},
			Duration: opts.Duration,
			Ease:     fn,
		})
		if err != nil {
			return nil, err
		}
	}
	for _, el := range els {
		if opts.AnchorX != 0 {
			el.Micro().AnchorX = opts.AnchorX
		}
		if opts.AnchorY != 0 {
			el.Micro().AnchorY = opts.AnchorY
		}
	}
	return a.play(tl)
}
