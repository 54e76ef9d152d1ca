package effect

import (
	"fmt"

	"github.com/milk9111/uifx/common"
	"github.com/milk9111/uifx/ease"
	"github.com/milk9111/uifx/tween"
)

// Forever makes a looping effect run until it is stopped.
const Forever = -1

// FadeOptions configures Appear and Disappear. A field is animated only when
// its from and to values differ.
type FadeOptions struct {
	XFrom     float64   `yaml:"x_from"`
	XTo       float64   `yaml:"x_to"`
	YFrom     float64   `yaml:"y_from"`
	YTo       float64   `yaml:"y_to"`
	ScaleFrom float64   `yaml:"scale_from"`
	ScaleTo   float64   `yaml:"scale_to"`
	AlphaFrom float64   `yaml:"alpha_from"`
	AlphaTo   float64   `yaml:"alpha_to"`
	Delay     float64   `yaml:"delay"`
	Duration  float64   `yaml:"duration"`
	Ease      ease.Name `yaml:"ease"`
	AlphaEase ease.Name `yaml:"alpha_ease"`
}

func DefaultAppearOptions() FadeOptions {
	return FadeOptions{
		ScaleFrom: 0.5,
		ScaleTo:   1,
		AlphaFrom: 0,
		AlphaTo:   1,
		Duration:  0.25,
		Ease:      ease.BackOut,
		AlphaEase: ease.PowerInOut,
	}
}

func DefaultDisappearOptions() FadeOptions {
	return FadeOptions{
		ScaleFrom: 1,
		ScaleTo:   0.5,
		AlphaFrom: 1,
		AlphaTo:   0,
		Duration:  0.25,
		Ease:      ease.BackOut,
		AlphaEase: ease.PowerInOut,
	}
}

type ClickOptions struct {
	XOffset     float64   `yaml:"x_offset"`
	YOffset     float64   `yaml:"y_offset"`
	XScale      float64   `yaml:"x_scale"`
	YScale      float64   `yaml:"y_scale"`
	Delay       float64   `yaml:"delay"`
	DurationIn  float64   `yaml:"duration_in"`
	DurationOut float64   `yaml:"duration_out"`
	EaseIn      ease.Name `yaml:"ease_in"`
	EaseOut     ease.Name `yaml:"ease_out"`
}

func DefaultClickOptions() ClickOptions {
	return ClickOptions{
		YOffset:     -25,
		XScale:      0.85,
		YScale:      1,
		DurationIn:  0.125,
		DurationOut: 0.25,
		EaseIn:      ease.PowerOut,
		EaseOut:     ease.BackOut,
	}
}

// SelectOptions configures Select. Zero anchors leave the element's anchors
// unchanged.
type SelectOptions struct {
	Selected bool      `yaml:"selected"`
	Scale    float64   `yaml:"scale"`
	Duration float64   `yaml:"duration"`
	Ease     ease.Name `yaml:"ease"`
	AnchorX  float64   `yaml:"anchor_x"`
	AnchorY  float64   `yaml:"anchor_y"`
}

func DefaultSelectOptions() SelectOptions {
	return SelectOptions{
		Selected: true,
		Scale:    1.25,
		Duration: 0.25,
		Ease:     ease.PowerInOut,
	}
}

// Loop holds the repetition settings shared by looping effects.
type Loop struct {
	// Iterations is Forever or the number of cycles to play.
	Iterations int `yaml:"iterations"`
	// Cooldown is the pause between cycles.
	Cooldown float64 `yaml:"cooldown"`
	// StartWithCooldown also waits one cooldown before the first cycle.
	StartWithCooldown bool `yaml:"start_with_cooldown"`
	// TotalDuration stops the effect after this many seconds; 0 never does.
	TotalDuration float64 `yaml:"total_duration"`
}

type PulseOptions struct {
	Loop        `yaml:",inline"`
	Scale       float64   `yaml:"scale"`
	DurationIn  float64   `yaml:"duration_in"`
	DurationOut float64   `yaml:"duration_out"`
	EaseIn      ease.Name `yaml:"ease_in"`
	EaseOut     ease.Name `yaml:"ease_out"`
}

func DefaultPulseOptions() PulseOptions {
	return PulseOptions{
		Loop:        Loop{Iterations: Forever, Cooldown: 3, StartWithCooldown: true},
		Scale:       1.1,
		DurationIn:  0.25,
		DurationOut: 0.5,
		EaseIn:      ease.PowerInOut,
		EaseOut:     ease.PowerInOut,
	}
}

// JumpOptions configures JumpCall. A positive Squash adds a squash-and-stretch
// flourish of SquashDuration before each jump.
type JumpOptions struct {
	Loop           `yaml:",inline"`
	JumpHeight     float64   `yaml:"jump_height"`
	DurationIn     float64   `yaml:"duration_in"`
	DurationOut    float64   `yaml:"duration_out"`
	EaseIn         ease.Name `yaml:"ease_in"`
	EaseOut        ease.Name `yaml:"ease_out"`
	Squash         float64   `yaml:"squash"`
	SquashDuration float64   `yaml:"squash_duration"`
}

func DefaultJumpOptions() JumpOptions {
	return JumpOptions{
		Loop:           Loop{Iterations: Forever, Cooldown: 4},
		JumpHeight:     25,
		DurationIn:     0.5,
		DurationOut:    0.5,
		EaseIn:         ease.Power2Out,
		EaseOut:        ease.BounceOut,
		SquashDuration: 0.1,
	}
}

// SpinOptions configures SpinCall. Each sway reverses the rotation and
// shrinks it by Damping.
type SpinOptions struct {
	Loop      `yaml:",inline"`
	AnchorX   float64   `yaml:"anchor_x"`
	AnchorY   float64   `yaml:"anchor_y"`
	Rotation  float64   `yaml:"rotation"`
	SwayCount int       `yaml:"sway_count"`
	Damping   float64   `yaml:"damping"`
	Duration  float64   `yaml:"duration"`
	Ease      ease.Name `yaml:"ease"`
}

func DefaultSpinOptions() SpinOptions {
	return SpinOptions{
		Loop:      Loop{Iterations: Forever, Cooldown: 4},
		AnchorX:   0.5,
		AnchorY:   0.5,
		Rotation:  0.0435,
		SwayCount: 4,
		Duration:  1.5,
		Ease:      ease.PowerInOut,
	}
}

// SwipeOptions configures SwipeCall. Duration is the length of one leg.
type SwipeOptions struct {
	Loop     `yaml:",inline"`
	DX       float64   `yaml:"dx"`
	DY       float64   `yaml:"dy"`
	Duration float64   `yaml:"duration"`
	EaseIn   ease.Name `yaml:"ease_in"`
	EaseOut  ease.Name `yaml:"ease_out"`
}

func DefaultSwipeOptions() SwipeOptions {
	return SwipeOptions{
		Loop:     Loop{Iterations: Forever},
		DX:       25,
		Duration: 0.4,
		EaseIn:   ease.PowerInOut,
		EaseOut:  ease.PowerInOut,
	}
}

// ShakeOptions configures Shake. Offsets are drawn from a generator seeded
// with Seed, so equal options shake identically.
type ShakeOptions struct {
	Loop      `yaml:",inline"`
	Radius    float64 `yaml:"radius"`
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Seed      uint64  `yaml:"seed"`
}

func DefaultShakeOptions() ShakeOptions {
	return ShakeOptions{
		Loop:      Loop{Iterations: Forever},
		Radius:    5,
		Frequency: 10,
		Duration:  0.6,
		Seed:      1,
	}
}

// StopOptions configures the stop of a looping effect. Rest overrides the
// rest target by property name, e.g. {"scale_x": 1.2}.
type StopOptions struct {
	Duration float64            `yaml:"duration"`
	Ease     ease.Name          `yaml:"ease"`
	Rest     map[string]float64 `yaml:"rest,omitempty"`
}

func DefaultStopOptions() StopOptions {
	return StopOptions{Duration: 0.25, Ease: ease.PowerInOut}
}

func (o StopOptions) restore() (Restore, error) {
	var c checker
	c.duration("duration", o.Duration)
	r := Restore{Duration: o.Duration, Ease: c.ease("ease", o.Ease)}
	for name, v := range o.Rest {
		p, err := tween.ParseProp(name)
		if err != nil {
			c.fail(err)
			continue
		}
		c.number("rest."+name, v)
		if r.To == nil {
			r.To = make(tween.Values, len(o.Rest))
		}
		r.To[p] = v
	}
	return r, c.err
}

// checker collects the first invalid option.
type checker struct {
	err error
}

func (c *checker) fail(err error) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
}

func (c *checker) number(name string, v float64) {
	if c.err == nil && !common.Finite(v) {
		c.err = fmt.Errorf("%w: %s is not finite", ErrInvalidOption, name)
	}
}

func (c *checker) duration(name string, v float64) {
	c.number(name, v)
	if c.err == nil && v < 0 {
		c.err = fmt.Errorf("%w: %s=%v is negative", ErrInvalidOption, name, v)
	}
}

func (c *checker) ease(name string, n ease.Name) ease.Func {
	fn, err := ease.Lookup(n)
	if err != nil {
		c.fail(fmt.Errorf("%s: %w", name, err))
		return ease.MustLookup(ease.Linear)
	}
	return fn
}

func (c *checker) loop(l Loop) tween.Options {
	c.duration("cooldown", l.Cooldown)
	c.duration("total_duration", l.TotalDuration)
	repeat := tween.Infinite
	switch {
	case l.Iterations == Forever:
	case l.Iterations >= 1:
		repeat = l.Iterations - 1
	default:
		if c.err == nil {
			c.err = fmt.Errorf("%w: got %d", ErrInvalidIterations, l.Iterations)
		}
	}
	return tween.Options{
		Repeat:      repeat,
		RepeatDelay: l.Cooldown,
		DelayFirst:  l.StartWithCooldown && l.Cooldown > 0,
	}
}
