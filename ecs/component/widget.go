package component

import (
	"image/color"

	ui "github.com/milk9111/uifx/component"
)

// Widget is an animatable UI element with a scene name.
type Widget struct {
	Name    string
	Element ui.Element
}

var WidgetComponent = NewComponent[Widget]("widget")

// Bounds is a widget's layout rectangle in logical pixels, top-left origin.
type Bounds struct {
	X, Y, W, H float64
}

var BoundsComponent = NewComponent[Bounds]("bounds")

// Contains reports whether (x, y) lies inside b shifted by (dx, dy).
func (b Bounds) Contains(x, y, dx, dy float64) bool {
	return x >= b.X+dx && x < b.X+dx+b.W && y >= b.Y+dy && y < b.Y+dy+b.H
}

type Fill struct {
	Color color.RGBA
}

var FillComponent = NewComponent[Fill]("fill")

type Label struct {
	Text  string
	Color color.RGBA
}

var LabelComponent = NewComponent[Label]("label")

// Sprite holds a transform in host units: rotation in degrees and an 8-bit
// alpha. Its Adapter bridges those fields to the widget's element.
type Sprite struct {
	AngleDeg float64
	Alpha    uint8
	Adapter  *ui.Adapter
}

var SpriteComponent = NewComponent[Sprite]("sprite")

// NewSprite returns a sprite with full alpha and an adapter bound to it.
func NewSprite() *Sprite {
	s := &Sprite{Alpha: 255}
	s.Adapter = ui.NewAdapter(ui.Degrees(&s.AngleDeg), ui.ByteAlpha(&s.Alpha))
	return s
}

// Script names the tengo script run when the widget is clicked.
type Script struct {
	Path string
}

var ScriptComponent = NewComponent[Script]("script")

// Attention names the looping preset the widget plays until clicked.
// Pending starts it on the next frame.
type Attention struct {
	Preset  string
	Pending bool
}

var AttentionComponent = NewComponent[Attention]("attention")
