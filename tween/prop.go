package tween

import (
	"fmt"
	"strings"
)

// Prop names one animatable numeric field of a property bag.
type Prop uint8

const (
	X Prop = iota + 1
	Y
	ScaleX
	ScaleY
	AnchorX
	AnchorY
	Rotation
	Alpha
)

var propNames = map[Prop]string{
	X:        "x",
	Y:        "y",
	ScaleX:   "scale_x",
	ScaleY:   "scale_y",
	AnchorX:  "anchor_x",
	AnchorY:  "anchor_y",
	Rotation: "rotation",
	Alpha:    "alpha",
}

func (p Prop) String() string {
	if name, ok := propNames[p]; ok {
		return name
	}
	return fmt.Sprintf("prop(%d)", uint8(p))
}

// ParseProp resolves the names used in prefabs and scripts. "angle" and "a"
// are accepted as aliases of rotation and alpha.
func ParseProp(s string) (Prop, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "angle":
		return Rotation, nil
	case "a", "opacity":
		return Alpha, nil
	case "scalex":
		return ScaleX, nil
	case "scaley":
		return ScaleY, nil
	}
	for p, n := range propNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProp, s)
}

// Target is a property bag whose numeric fields can be assigned in place.
// Field returns nil for properties the bag does not carry. The returned
// pointer must stay valid for the lifetime of the bag.
type Target interface {
	Field(p Prop) *float64
}

// Values is a partial mapping of property to value.
type Values map[Prop]float64

// Clone returns a copy of v.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Snapshot reads the current value of each prop from target.
func Snapshot(target Target, props ...Prop) (Values, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	out := make(Values, len(props))
	for _, p := range props {
		ptr := target.Field(p)
		if ptr == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProp, p)
		}
		out[p] = *ptr
	}
	return out, nil
}
