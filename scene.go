package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	ui "github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/ecs"
	"github.com/milk9111/uifx/ecs/component"
	"github.com/milk9111/uifx/prefabs"
)

var (
	defaultFill = color.RGBA{R: 0x45, G: 0x5a, B: 0x64, A: 0xff}
	defaultText = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// loadScene replaces every widget with the nodes of the current scene and
// plays the scene's appear preset on them. Attention cues start once each
// widget has appeared.
func (g *Game) loadScene() error {
	spec, err := prefabs.LoadScene(g.sceneName)
	if err != nil {
		return err
	}
	var appear *prefabs.Preset
	if spec.Appear != "" {
		p, err := prefabs.LoadPreset(spec.Appear)
		if err != nil {
			return fmt.Errorf("scene %s: %w", spec.Name, err)
		}
		appear = &p
	}

	for _, e := range g.world.Query(component.WidgetComponent.Kind()) {
		if widget, ok := ecs.Get(g.world, e, component.WidgetComponent.Kind()); ok {
			g.animator.Release(widget.Element)
		}
		ecs.DestroyEntity(g.world, e)
	}

	for i, node := range spec.Nodes {
		el, att, err := g.spawnNode(node)
		if err != nil {
			return fmt.Errorf("scene %s: node %s: %w", spec.Name, node.Name, err)
		}
		if appear == nil {
			if att != nil {
				att.Pending = true
			}
			continue
		}
		delay := float64(i) * spec.Stagger
		done, err := appear.With(map[string]any{"delay": delay}).Play(g.animator, el)
		if err != nil {
			return fmt.Errorf("scene %s: node %s: %w", spec.Name, node.Name, err)
		}
		if att != nil {
			done.Then(func() { att.Pending = true })
		}
	}

	g.scene = spec
	g.setStatus("loaded scene %s (%d widgets)", spec.Name, len(spec.Nodes))
	return nil
}

func (g *Game) spawnNode(node prefabs.NodeSpec) (ui.Element, *component.Attention, error) {
	e := ecs.CreateEntity(g.world)

	var el ui.Element
	if node.HostUnits {
		sprite := component.NewSprite()
		if err := ecs.Add(g.world, e, component.SpriteComponent.Kind(), sprite); err != nil {
			return nil, nil, err
		}
		el = sprite.Adapter
	} else {
		el = ui.NewNode()
	}

	if err := ecs.Add(g.world, e, component.WidgetComponent.Kind(), &component.Widget{Name: node.Name, Element: el}); err != nil {
		return nil, nil, err
	}
	bounds := &component.Bounds{X: node.X, Y: node.Y, W: node.Width, H: node.Height}
	if err := ecs.Add(g.world, e, component.BoundsComponent.Kind(), bounds); err != nil {
		return nil, nil, err
	}
	if err := ecs.Add(g.world, e, component.FillComponent.Kind(), &component.Fill{Color: node.Fill.RGBA8(defaultFill)}); err != nil {
		return nil, nil, err
	}
	if node.Label != "" {
		label := &component.Label{Text: node.Label, Color: node.TextColor.RGBA8(defaultText)}
		if err := ecs.Add(g.world, e, component.LabelComponent.Kind(), label); err != nil {
			return nil, nil, err
		}
	}
	if node.Script != "" {
		if err := ecs.Add(g.world, e, component.ScriptComponent.Kind(), &component.Script{Path: node.Script}); err != nil {
			return nil, nil, err
		}
	}

	var att *component.Attention
	if node.Attention != "" {
		att = &component.Attention{Preset: node.Attention}
		if err := ecs.Add(g.world, e, component.AttentionComponent.Kind(), att); err != nil {
			return nil, nil, err
		}
	}
	return el, att, nil
}

// elements returns the element of every widget in draw order.
func (g *Game) elements() []ui.Element {
	ents := g.world.Query(component.WidgetComponent.Kind())
	out := make([]ui.Element, 0, len(ents))
	for _, e := range ents {
		if widget, ok := ecs.Get(g.world, e, component.WidgetComponent.Kind()); ok && widget.Element != nil {
			out = append(out, widget.Element)
		}
	}
	return out
}

// playAll runs preset name on every widget.
func (g *Game) playAll(name string) {
	p, err := prefabs.LoadPreset(name)
	if err != nil {
		g.setStatus("%v", err)
		return
	}
	if _, err := p.Play(g.animator, g.elements()...); err != nil {
		g.setStatus("%v", err)
		return
	}
	g.setStatus("playing %s", name)
}

// stopAll stops preset name's looping effect on every widget.
func (g *Game) stopAll(name string) {
	p, err := prefabs.LoadPreset(name)
	if err != nil {
		g.setStatus("%v", err)
		return
	}
	if err := p.StopOn(g.animator, g.elements()...); err != nil {
		g.setStatus("%v", err)
		return
	}
	g.setStatus("stopped %s", name)
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
