// Package ease maps normalized progress [0,1] to eased progress through named,
// swappable curves. The curve mathematics come from gween; this package only
// names them and lets hosts register their own.
package ease

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gween "github.com/tanema/gween/ease"
)

var ErrUnknownEase = errors.New("ease: unknown easing function")

// Func maps progress in [0,1] to eased progress. Overshooting curves such as
// back-out may leave [0,1] between the endpoints but must return 1 at 1.
type Func func(progress float64) float64

// Name identifies a registered curve, e.g. "back-out" or "power-in-out".
type Name string

const (
	Linear       Name = "linear"
	PowerIn      Name = "power-in"
	PowerOut     Name = "power-out"
	PowerInOut   Name = "power-in-out"
	Power2In     Name = "power2-in"
	Power2Out    Name = "power2-out"
	Power2InOut  Name = "power2-in-out"
	Power3In     Name = "power3-in"
	Power3Out    Name = "power3-out"
	Power3InOut  Name = "power3-in-out"
	Power4In     Name = "power4-in"
	Power4Out    Name = "power4-out"
	Power4InOut  Name = "power4-in-out"
	SineIn       Name = "sine-in"
	SineOut      Name = "sine-out"
	SineInOut    Name = "sine-in-out"
	ExpoIn       Name = "expo-in"
	ExpoOut      Name = "expo-out"
	ExpoInOut    Name = "expo-in-out"
	CircIn       Name = "circ-in"
	CircOut      Name = "circ-out"
	CircInOut    Name = "circ-in-out"
	BackIn       Name = "back-in"
	BackOut      Name = "back-out"
	BackInOut    Name = "back-in-out"
	ElasticIn    Name = "elastic-in"
	ElasticOut   Name = "elastic-out"
	ElasticInOut Name = "elastic-in-out"
	BounceIn     Name = "bounce-in"
	BounceOut    Name = "bounce-out"
	BounceInOut  Name = "bounce-in-out"
)

var registry = map[Name]Func{}

func init() {
	builtin := map[Name]gween.TweenFunc{
		Linear:       gween.Linear,
		PowerIn:      gween.InQuad,
		PowerOut:     gween.OutQuad,
		PowerInOut:   gween.InOutQuad,
		Power2In:     gween.InCubic,
		Power2Out:    gween.OutCubic,
		Power2InOut:  gween.InOutCubic,
		Power3In:     gween.InQuart,
		Power3Out:    gween.OutQuart,
		Power3InOut:  gween.InOutQuart,
		Power4In:     gween.InQuint,
		Power4Out:    gween.OutQuint,
		Power4InOut:  gween.InOutQuint,
		SineIn:       gween.InSine,
		SineOut:      gween.OutSine,
		SineInOut:    gween.InOutSine,
		ExpoIn:       gween.InExpo,
		ExpoOut:      gween.OutExpo,
		ExpoInOut:    gween.InOutExpo,
		CircIn:       gween.InCirc,
		CircOut:      gween.OutCirc,
		CircInOut:    gween.InOutCirc,
		BackIn:       gween.InBack,
		BackOut:      gween.OutBack,
		BackInOut:    gween.InOutBack,
		ElasticIn:    gween.InElastic,
		ElasticOut:   gween.OutElastic,
		ElasticInOut: gween.InOutElastic,
		BounceIn:     gween.InBounce,
		BounceOut:    gween.OutBounce,
		BounceInOut:  gween.InOutBounce,
	}
	for name, fn := range builtin {
		registry[name] = FromTween(fn)
	}
}

// FromTween adapts a gween curve, which works on (elapsed, begin, change,
// duration), to a normalized progress function.
func FromTween(fn gween.TweenFunc) Func {
	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return float64(fn(float32(p), 0, 1, 1))
	}
}

// Register installs or replaces a named curve. It panics on an empty name or
// a nil function, mirroring other init-time registries.
func Register(name Name, fn Func) {
	if strings.TrimSpace(string(name)) == "" {
		panic("ease: empty name")
	}
	if fn == nil {
		panic("ease: nil function for " + string(name))
	}
	registry[normalize(name)] = fn
}

// Lookup returns the curve registered under name. The empty name resolves to
// Linear.
func Lookup(name Name) (Func, error) {
	if name == "" {
		return registry[Linear], nil
	}
	fn, ok := registry[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, string(name))
	}
	return fn, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name Name) Func {
	fn, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// Names lists the registered curve names in sorted order.
func Names() []Name {
	names := make([]Name, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// normalize accepts "Back.Out", "back_out" and "back-out" alike.
func normalize(name Name) Name {
	s := strings.ToLower(strings.TrimSpace(string(name)))
	s = strings.NewReplacer(".", "-", "_", "-", " ", "-").Replace(s)
	return Name(s)
}
