package component

import (
	"math"

	"github.com/milk9111/uifx/common"
	"github.com/milk9111/uifx/tween"
)

// Binding copies one host field to and from the canonical bags.
type Binding struct {
	pull func(m *Micro, c *Color)
	push func(m *Micro, c *Color)
}

// Float binds a host field that already uses canonical units.
func Float(p tween.Prop, host *float64) Binding {
	return Binding{
		pull: func(m *Micro, c *Color) {
			if f := field(m, c, p); f != nil {
				*f = *host
			}
		},
		push: func(m *Micro, c *Color) {
			if f := field(m, c, p); f != nil {
				*host = *f
			}
		},
	}
}

// Degrees binds a host rotation stored in degrees.
func Degrees(host *float64) Binding {
	return Binding{
		pull: func(m *Micro, _ *Color) { m.Rotation = *host * math.Pi / 180 },
		push: func(m *Micro, _ *Color) { *host = m.Rotation * 180 / math.Pi },
	}
}

// ByteAlpha binds a host opacity stored as 0-255.
func ByteAlpha(host *uint8) Binding {
	return Binding{
		pull: func(_ *Micro, c *Color) { c.A = float64(*host) / 255 },
		push: func(_ *Micro, c *Color) { *host = uint8(math.Round(common.Clamp01(c.A) * 255)) },
	}
}

func field(m *Micro, c *Color, p tween.Prop) *float64 {
	if p == tween.Alpha {
		return c.Field(p)
	}
	return m.Field(p)
}

// Adapter is an Element mirrored onto a host object whose fields use other
// units or types. Effects animate the canonical bags; the host sees the
// result after Push.
type Adapter struct {
	micro    *Micro
	color    *Color
	bindings []Binding
}

// NewAdapter starts from rest, then pulls the current host values.
func NewAdapter(bindings ...Binding) *Adapter {
	micro := RestMicro()
	a := &Adapter{
		micro:    &micro,
		color:    &Color{A: 1},
		bindings: bindings,
	}
	a.Pull()
	return a
}

func (a *Adapter) Micro() *Micro {
	if a == nil {
		return nil
	}
	return a.micro
}

func (a *Adapter) Color() *Color {
	if a == nil {
		return nil
	}
	return a.color
}

// Pull refreshes the canonical bags from the host.
func (a *Adapter) Pull() {
	if a == nil {
		return
	}
	for _, b := range a.bindings {
		if b.pull != nil {
			b.pull(a.micro, a.color)
		}
	}
}

// Push writes the canonical bags back to the host.
func (a *Adapter) Push() {
	if a == nil {
		return
	}
	for _, b := range a.bindings {
		if b.push != nil {
			b.push(a.micro, a.color)
		}
	}
}
