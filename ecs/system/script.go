package system

import (
	"log"

	ui "github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/ecs"
	"github.com/milk9111/uifx/ecs/component"
	"github.com/milk9111/uifx/script"
)

// ScriptSystem runs the click handler of every clicked widget that carries
// a Script.
type ScriptSystem struct {
	runtime *script.Runtime
}

func NewScriptSystem(rt *script.Runtime) *ScriptSystem {
	return &ScriptSystem{runtime: rt}
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if s == nil || s.runtime == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain(ecs.EventClick) {
		click, ok := evt.Data.(ecs.ClickEvent)
		if !ok {
			continue
		}
		sc, ok := ecs.Get(w, click.Entity, component.ScriptComponent.Kind())
		if !ok || sc.Path == "" {
			continue
		}
		widget, ok := ecs.Get(w, click.Entity, component.WidgetComponent.Kind())
		if !ok {
			continue
		}
		if err := s.runtime.Click(sc.Path, widget.Name); err != nil {
			log.Printf("script: entity=%s widget=%s error: %v", click.Entity, widget.Name, err)
		}
	}
}

// FindWidget returns the alive entity whose widget is named name.
func FindWidget(w *ecs.World, name string) (ecs.Entity, *component.Widget, bool) {
	for _, e := range w.Query(component.WidgetComponent.Kind()) {
		widget, ok := ecs.Get(w, e, component.WidgetComponent.Kind())
		if ok && widget.Name == name {
			return e, widget, true
		}
	}
	return 0, nil, false
}

// WidgetHost resolves script targets against the widgets of w.
func WidgetHost(w *ecs.World) script.Host {
	return script.HostFunc(func(name string) (ui.Element, bool) {
		_, widget, ok := FindWidget(w, name)
		if !ok || widget.Element == nil {
			return nil, false
		}
		return widget.Element, true
	})
}
