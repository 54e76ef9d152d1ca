package ecs

import (
	"cmp"
	"slices"

	"github.com/milk9111/uifx/ecs/component"
)

// snapshot returns the alive entities in s, sorted by id.
func (w *World) snapshot(s *SparseSet) []Entity {
	if s.Len() == 0 {
		return nil
	}
	out := make([]Entity, 0, s.Len())
	for _, id := range s.denseEntities {
		if e, ok := w.entities.live(id); ok {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b Entity) int { return cmp.Compare(a.id(), b.id()) })
	return out
}

// intersect returns the alive entities present in every store, sorted by id.
// A missing store yields nil.
func (w *World) intersect(ids ...component.ID) []Entity {
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	slices.SortFunc(sets, func(a, b *SparseSet) int { return a.Len() - b.Len() })
	var out []Entity
	for _, e := range w.snapshot(sets[0]) {
		all := true
		for _, s := range sets[1:] {
			if !s.Has(e.id()) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}

// KindID is satisfied by every component.Kind.
type KindID interface {
	ID() component.ID
}

// Query returns the alive entities holding every kind, sorted by id.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	ids := make([]component.ID, 0, len(kinds))
	for _, k := range kinds {
		ids = append(ids, k.ID())
	}
	return w.intersect(ids...)
}

// First returns the lowest-id alive entity holding kind.
func (w *World) First(kind KindID) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return NoEntity, false
	}
	return ents[0], true
}
