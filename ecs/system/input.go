package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/uifx/ecs"
	"github.com/milk9111/uifx/ecs/component"
)

// InputSystem turns a left click into a ClickEvent for the topmost widget
// under the cursor.
type InputSystem struct {
	pressed func() bool
	cursor  func() (int, int)
}

func NewInputSystem() *InputSystem {
	return &InputSystem{
		pressed: func() bool { return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) },
		cursor:  ebiten.CursorPosition,
	}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.pressed == nil || !i.pressed() {
		return
	}
	cx, cy := i.cursor()
	x, y := float64(cx), float64(cy)

	if e, ok := HitTest(w, x, y); ok {
		w.Events().Push(ecs.Event{Type: ecs.EventClick, Data: ecs.ClickEvent{Entity: e, X: x, Y: y}})
	}
}

// HitTest returns the topmost widget whose bounds, moved by its animated
// offset, contain (x, y). Later entities draw on top.
func HitTest(w *ecs.World, x, y float64) (ecs.Entity, bool) {
	ents := w.Query(component.WidgetComponent.Kind(), component.BoundsComponent.Kind())
	for i := len(ents) - 1; i >= 0; i-- {
		widget, _ := ecs.Get(w, ents[i], component.WidgetComponent.Kind())
		bounds, _ := ecs.Get(w, ents[i], component.BoundsComponent.Kind())
		if widget == nil || bounds == nil || widget.Element == nil {
			continue
		}
		m := widget.Element.Micro()
		if m == nil {
			continue
		}
		if bounds.Contains(x, y, m.X, m.Y) {
			return ents[i], true
		}
	}
	return 0, false
}
