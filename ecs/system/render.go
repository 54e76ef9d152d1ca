package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/uifx/ecs"
	"github.com/milk9111/uifx/ecs/component"
)

const labelScale = 2

// RenderSystem draws widgets as filled rectangles with centered labels,
// applying each element's offset, scale, rotation about its anchor, and
// alpha.
type RenderSystem struct {
	pixel *ebiten.Image
	face  *text.GoXFace
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	for _, e := range w.Query(component.WidgetComponent.Kind(), component.BoundsComponent.Kind()) {
		widget, _ := ecs.Get(w, e, component.WidgetComponent.Kind())
		bounds, _ := ecs.Get(w, e, component.BoundsComponent.Kind())
		if widget.Element == nil {
			continue
		}
		geo, alpha, ok := widgetTransform(w, e, widget, bounds)
		if !ok || alpha <= 0 {
			continue
		}

		fill := color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
		if f, ok := ecs.Get(w, e, component.FillComponent.Kind()); ok {
			fill = f.Color
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(bounds.W, bounds.H)
		op.GeoM.Concat(geo)
		op.ColorScale.ScaleWithColor(fill)
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(r.pixel, op)

		label, ok := ecs.Get(w, e, component.LabelComponent.Kind())
		if !ok || label.Text == "" {
			continue
		}
		tw, th := text.Measure(label.Text, r.face, 0)
		top := &text.DrawOptions{}
		top.GeoM.Scale(labelScale, labelScale)
		top.GeoM.Translate((bounds.W-tw*labelScale)/2, (bounds.H-th*labelScale)/2)
		top.GeoM.Concat(geo)
		top.ColorScale.ScaleWithColor(label.Color)
		top.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, label.Text, r.face, top)
	}
}

// widgetTransform maps widget-local pixels to the screen. A Sprite supplies
// rotation and alpha in host units; otherwise the element's values are used.
func widgetTransform(w *ecs.World, e ecs.Entity, widget *component.Widget, b *component.Bounds) (ebiten.GeoM, float64, bool) {
	var geo ebiten.GeoM
	m := widget.Element.Micro()
	c := widget.Element.Color()
	if m == nil || c == nil {
		return geo, 0, false
	}

	rotation, alpha := m.Rotation, c.A
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		rotation = s.AngleDeg * math.Pi / 180
		alpha = float64(s.Alpha) / 255
	}

	px, py := m.AnchorX*b.W, m.AnchorY*b.H
	geo.Translate(-px, -py)
	geo.Scale(m.ScaleX, m.ScaleY)
	geo.Rotate(rotation)
	geo.Translate(b.X+px+m.X, b.Y+py+m.Y)
	return geo, alpha, true
}
