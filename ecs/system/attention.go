package system

import (
	"log"

	"github.com/milk9111/uifx/ecs"
	"github.com/milk9111/uifx/ecs/component"
	"github.com/milk9111/uifx/effect"
	"github.com/milk9111/uifx/prefabs"
)

// AttentionSystem starts the looping cue of widgets whose Attention is
// pending.
type AttentionSystem struct {
	animator   *effect.Animator
	LoadPreset func(name string) (prefabs.Preset, error)
}

func NewAttentionSystem(animator *effect.Animator) *AttentionSystem {
	return &AttentionSystem{animator: animator, LoadPreset: prefabs.LoadPreset}
}

func (a *AttentionSystem) Update(w *ecs.World) {
	if a == nil || a.animator == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.WidgetComponent.Kind(), component.AttentionComponent.Kind(), func(e ecs.Entity, widget *component.Widget, att *component.Attention) {
		if !att.Pending {
			return
		}
		att.Pending = false
		p, err := a.LoadPreset(att.Preset)
		if err != nil {
			log.Printf("attention: entity=%s preset=%s error: %v", e, att.Preset, err)
			return
		}
		if _, err := p.Play(a.animator, widget.Element); err != nil {
			log.Printf("attention: entity=%s preset=%s error: %v", e, att.Preset, err)
		}
	})
}

// Reload stops the cues playing preset name and queues them to restart with
// the preset's current definition. It returns the number of widgets queued.
func (a *AttentionSystem) Reload(w *ecs.World, name string) int {
	if a == nil || w == nil {
		return 0
	}
	snap := effect.DefaultStopOptions()
	snap.Duration = 0
	n := 0
	ecs.ForEach2(w, component.WidgetComponent.Kind(), component.AttentionComponent.Kind(), func(_ ecs.Entity, widget *component.Widget, att *component.Attention) {
		if att.Preset != name {
			return
		}
		for _, k := range effect.Kinds() {
			if a.animator.Manager().Active(widget.Element, k) {
				_ = a.animator.Stop(k, snap, widget.Element)
				att.Pending = true
			}
		}
		if att.Pending {
			n++
		}
	})
	return n
}
