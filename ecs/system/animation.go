package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/uifx/ecs"
	"github.com/milk9111/uifx/ecs/component"
	"github.com/milk9111/uifx/effect"
)

const defaultPruneEvery = 120

// AnimationSystem advances the effect clock once per frame and mirrors
// adapter-backed sprites back to their host fields.
type AnimationSystem struct {
	animator *effect.Animator
	// DT overrides the frame step in seconds; zero uses 1/TPS.
	DT         float64
	PruneEvery int
	frame      int
}

func NewAnimationSystem(animator *effect.Animator) *AnimationSystem {
	return &AnimationSystem{animator: animator, PruneEvery: defaultPruneEvery}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || a.animator == nil || w == nil {
		return
	}

	dt := a.DT
	if dt <= 0 {
		dt = 1 / float64(ebiten.TPS())
	}
	a.animator.Tick(dt)

	ecs.ForEach(w, component.SpriteComponent.Kind(), func(_ ecs.Entity, s *component.Sprite) {
		s.Adapter.Push()
	})

	a.frame++
	if a.PruneEvery > 0 && a.frame%a.PruneEvery == 0 {
		a.animator.Manager().Prune()
	}
}
