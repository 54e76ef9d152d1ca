// Package tween is a frame-driven interpolation engine. A Tween moves a set of
// fields on one property bag from start to end values over a duration; a
// Timeline composes tweens on a shared time origin with repeat, cooldown and
// completion; a Clock advances every scheduled timeline once per tick.
package tween

import (
	"fmt"

	"github.com/milk9111/uifx/common"
	"github.com/milk9111/uifx/ease"
)

// Tween animates the keys of To on Target. From is optional: keys missing
// from it are captured from the live target when the owning timeline is
// scheduled. Offset places the tween on the timeline's time axis.
type Tween struct {
	Target   Target
	From     Values
	To       Values
	Duration float64
	Ease     ease.Func
	Offset   float64
}

func (tw Tween) validate() error {
	if !common.Finite(tw.Duration) || !common.Finite(tw.Offset) {
		return ErrNonFinite
	}
	if tw.Duration < 0 || tw.Offset < 0 {
		return ErrNegativeDuration
	}
	if len(tw.To) == 0 {
		return nil
	}
	if tw.Target == nil {
		return ErrNilTarget
	}
	for p, v := range tw.To {
		if tw.Target.Field(p) == nil {
			return fmt.Errorf("%w: %s", ErrUnknownProp, p)
		}
		if !common.Finite(v) {
			return fmt.Errorf("%w: %s=%v", ErrNonFinite, p, v)
		}
	}
	for p, v := range tw.From {
		if !common.Finite(v) {
			return fmt.Errorf("%w: from %s=%v", ErrNonFinite, p, v)
		}
	}
	return nil
}

// channel is one field of a track. The field is resolved through the track's
// target on every write so weak targets stay weak.
type channel struct {
	prop    Prop
	from    float64
	to      float64
	fromSet bool
}

// track is a validated Tween placed on a timeline.
type track struct {
	target   Target
	channels []channel
	offset   float64
	duration float64
	ease     ease.Func
	finished bool
}

func newTrack(tw Tween) *track {
	tr := &track{
		target:   tw.Target,
		offset:   tw.Offset,
		duration: tw.Duration,
		ease:     tw.Ease,
	}
	if tr.ease == nil {
		tr.ease = ease.MustLookup(ease.Linear)
	}
	// Stable channel order keeps parallel writes deterministic.
	for p := X; p <= Alpha; p++ {
		to, ok := tw.To[p]
		if !ok {
			continue
		}
		ch := channel{prop: p, to: to}
		if from, ok := tw.From[p]; ok {
			ch.from = from
			ch.fromSet = true
		}
		tr.channels = append(tr.channels, ch)
	}
	return tr
}

func (tr *track) end() float64 {
	return tr.offset + tr.duration
}

// render writes the track's values for timeline-local time local, which must
// be at or past the track's offset. At or past the end the exact To values
// are written. Fields the target no longer resolves are skipped.
func (tr *track) render(local float64) {
	if local >= tr.end() {
		for i := range tr.channels {
			if ptr := tr.target.Field(tr.channels[i].prop); ptr != nil {
				*ptr = tr.channels[i].to
			}
		}
		tr.finished = true
		return
	}
	eased := tr.ease(common.Clamp01((local - tr.offset) / tr.duration))
	for i := range tr.channels {
		ch := &tr.channels[i]
		if ptr := tr.target.Field(ch.prop); ptr != nil {
			*ptr = common.Lerp(ch.from, ch.to, eased)
		}
	}
}
