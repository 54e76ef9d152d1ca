package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/effect"
)

var (
	ErrUnknownEffect = errors.New("prefabs: unknown effect")
	ErrNotLooping    = errors.New("prefabs: effect does not loop")
)

// Effect names accepted in presets besides the looping kinds.
const (
	EffectAppear    = "appear"
	EffectDisappear = "disappear"
	EffectClick     = "click"
	EffectSelect    = "select"
)

// Preset is a named effect with option overrides. Options and Stop hold only
// the fields that differ from the effect's defaults.
type Preset struct {
	Name    string         `yaml:"name"`
	Effect  string         `yaml:"effect"`
	Options map[string]any `yaml:"options"`
	Stop    map[string]any `yaml:"stop"`
}

// LoadPreset reads effects/<name>.yaml.
func LoadPreset(name string) (Preset, error) {
	p, err := LoadSpec[Preset](presetPath(name))
	if err != nil {
		return Preset{}, err
	}
	if p.Name == "" {
		p.Name = name
	}
	if !KnownEffect(p.Effect) {
		return Preset{}, fmt.Errorf("%w: preset %s uses %q", ErrUnknownEffect, name, p.Effect)
	}
	return p, nil
}

func presetPath(name string) string {
	return "effects/" + strings.TrimSuffix(name, ".yaml") + ".yaml"
}

// KnownEffect reports whether name is a catalog effect.
func KnownEffect(name string) bool {
	switch name {
	case EffectAppear, EffectDisappear, EffectClick, EffectSelect:
		return true
	}
	return Looping(name)
}

// Looping reports whether name is a looping effect kind.
func Looping(name string) bool {
	for _, k := range effect.Kinds() {
		if string(k) == name {
			return true
		}
	}
	return false
}

// With returns a copy of p whose options also carry overrides.
func (p Preset) With(overrides map[string]any) Preset {
	out := p
	out.Options = maps.Clone(p.Options)
	if out.Options == nil {
		out.Options = make(map[string]any, len(overrides))
	}
	maps.Copy(out.Options, overrides)
	return out
}

// DecodeOptions decodes raw over defaults. Fields absent from raw keep their
// default; unknown fields are an error.
func DecodeOptions[T any](raw map[string]any, defaults T) (T, error) {
	out := defaults
	if len(raw) == 0 {
		return out, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return defaults, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return defaults, fmt.Errorf("%w: %w", effect.ErrInvalidOption, err)
	}
	return out, nil
}

// Play runs the preset on els. One-shot effects return their completion;
// looping effects return nil.
func (p Preset) Play(a *effect.Animator, els ...component.Element) (*effect.Completion, error) {
	var (
		done *effect.Completion
		err  error
	)
	switch p.Effect {
	case EffectAppear:
		done, err = play(p, effect.DefaultAppearOptions(), a.Appear, els)
	case EffectDisappear:
		done, err = play(p, effect.DefaultDisappearOptions(), a.Disappear, els)
	case EffectClick:
		done, err = play(p, effect.DefaultClickOptions(), a.Click, els)
	case EffectSelect:
		done, err = play(p, effect.DefaultSelectOptions(), a.Select, els)
	case string(effect.KindPulse):
		err = start(p, effect.DefaultPulseOptions(), a.Pulse, els)
	case string(effect.KindJumpCall):
		err = start(p, effect.DefaultJumpOptions(), a.JumpCall, els)
	case string(effect.KindSpinCall):
		err = start(p, effect.DefaultSpinOptions(), a.SpinCall, els)
	case string(effect.KindSwipeCall):
		err = start(p, effect.DefaultSwipeOptions(), a.SwipeCall, els)
	case string(effect.KindShake):
		err = start(p, effect.DefaultShakeOptions(), a.Shake, els)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, p.Effect)
	}
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", p.Name, err)
	}
	return done, nil
}

// StopOn stops the preset's looping effect on els using its stop options.
func (p Preset) StopOn(a *effect.Animator, els ...component.Element) error {
	if !Looping(p.Effect) {
		return fmt.Errorf("%w: %q", ErrNotLooping, p.Effect)
	}
	opts, err := DecodeOptions(p.Stop, effect.DefaultStopOptions())
	if err != nil {
		return fmt.Errorf("prefabs: %s: %w", p.Name, err)
	}
	return a.Stop(effect.Kind(p.Effect), opts, els...)
}

func play[T any](p Preset, defaults T, fn func(T, ...component.Element) (*effect.Completion, error), els []component.Element) (*effect.Completion, error) {
	opts, err := DecodeOptions(p.Options, defaults)
	if err != nil {
		return nil, err
	}
	return fn(opts, els...)
}

func start[T any](p Preset, defaults T, fn func(T, ...component.Element) error, els []component.Element) error {
	opts, err := DecodeOptions(p.Options, defaults)
	if err != nil {
		return err
	}
	return fn(opts, els...)
}
