package component

import (
	"errors"

	"github.com/milk9111/uifx/tween"
)

var ErrNilElement = errors.New("component: element is nil")

// Micro is the local transform of an element. X and Y are offsets from the
// element's layout position, anchors are normalized 0-1 and Rotation is in
// radians.
type Micro struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	AnchorX  float64
	AnchorY  float64
	Rotation float64
}

// RestMicro is the neutral transform: no offset, unit scale, centered anchor
// and no rotation.
func RestMicro() Micro {
	return Micro{ScaleX: 1, ScaleY: 1, AnchorX: 0.5, AnchorY: 0.5}
}

func (m *Micro) Field(p tween.Prop) *float64 {
	if m == nil {
		return nil
	}
	switch p {
	case tween.X:
		return &m.X
	case tween.Y:
		return &m.Y
	case tween.ScaleX:
		return &m.ScaleX
	case tween.ScaleY:
		return &m.ScaleY
	case tween.AnchorX:
		return &m.AnchorX
	case tween.AnchorY:
		return &m.AnchorY
	case tween.Rotation:
		return &m.Rotation
	}
	return nil
}

// Color carries the element's opacity in [0,1].
type Color struct {
	A float64
}

func (c *Color) Field(p tween.Prop) *float64 {
	if c == nil || p != tween.Alpha {
		return nil
	}
	return &c.A
}

// Element is anything the effects can animate. Both bags must stay at the
// same address for the lifetime of the element, and the Micro pointer is the
// element's identity.
type Element interface {
	Micro() *Micro
	Color() *Color
}

// Node is a self-contained Element. Use NewNode; the zero value has no bags.
type Node struct {
	micro *Micro
	color *Color
}

// NewNode returns a node at rest with full opacity.
func NewNode() *Node {
	n := &Node{micro: new(Micro), color: new(Color)}
	n.Reset()
	return n
}

func (n *Node) Micro() *Micro {
	if n == nil {
		return nil
	}
	return n.micro
}

func (n *Node) Color() *Color {
	if n == nil {
		return nil
	}
	return n.color
}

// Reset puts the node back at rest with full opacity.
func (n *Node) Reset() {
	if n == nil || n.micro == nil || n.color == nil {
		return
	}
	*n.micro = RestMicro()
	*n.color = Color{A: 1}
}

// Check reports ErrNilElement for a nil element or one with a missing bag.
func Check(el Element) error {
	if el == nil || el.Micro() == nil || el.Color() == nil {
		return ErrNilElement
	}
	return nil
}
