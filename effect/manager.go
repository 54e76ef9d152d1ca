package effect

import (
	"fmt"
	"weak"

	"github.com/milk9111/uifx/common"
	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/ease"
	"github.com/milk9111/uifx/tween"
)

// Restore describes the one-shot tween a stop plays after killing a looping
// effect. An empty To falls back to the rest values recorded when the effect
// started; a nil Ease is power-in-out.
type Restore struct {
	To       tween.Values
	Duration float64
	Ease     ease.Func
}

func DefaultRestore() Restore {
	return Restore{Duration: 0.25, Ease: ease.MustLookup(ease.PowerInOut)}
}

// RestValues is the neutral transform used when no other rest target is
// known.
func RestValues() tween.Values {
	return tween.Values{
		tween.X:        0,
		tween.Y:        0,
		tween.ScaleX:   1,
		tween.ScaleY:   1,
		tween.Rotation: 0,
	}
}

type key struct {
	id   weak.Pointer[component.Micro]
	kind Kind
}

// handle reaches the element only through weak targets, so neither the
// registry nor the clock keeps a registered element alive.
type handle struct {
	tl     *tween.Timeline
	cutoff *tween.Timeline
	rest   tween.Values
	micro  tween.Target
	color  tween.Target
}

func (h *handle) kill() {
	h.tl.Kill()
	h.cutoff.Kill()
}

// Manager keeps at most one live timeline per (element, kind). Elements are
// held weakly: a collected element's handles stop writing and Prune drops
// them. Release is the explicit hook for elements that are disposed but may
// still be reachable.
type Manager struct {
	clock   *tween.Clock
	handles map[key]*handle

	// Logf, when set, receives supersede and stop diagnostics.
	Logf func(format string, args ...any)
}

func NewManager(clock *tween.Clock) *Manager {
	if clock == nil {
		clock = tween.NewClock()
	}
	return &Manager{
		clock:   clock,
		handles: make(map[key]*handle),
	}
}

func (m *Manager) Clock() *tween.Clock {
	if m == nil {
		return nil
	}
	return m.clock
}

func keyOf(el component.Element, kind Kind) key {
	return key{id: weak.Make(el.Micro()), kind: kind}
}

// Start schedules tl and registers it for (el, kind), killing any timeline
// already registered there. A stop restores the neutral transform.
func (m *Manager) Start(el component.Element, kind Kind, tl *tween.Timeline) error {
	return m.start(el, kind, tl, nil, 0)
}

// start registers tl with rest as the stop target. A positive total schedules
// a cutoff on the same clock that stops the effect once total seconds pass.
func (m *Manager) start(el component.Element, kind Kind, tl *tween.Timeline, rest tween.Values, total float64) error {
	if err := component.Check(el); err != nil {
		return err
	}
	if kind == "" {
		return ErrEmptyKind
	}
	if tl == nil {
		return tween.ErrNilTimeline
	}
	if !common.Finite(total) || total < 0 {
		return fmt.Errorf("%w: total_duration=%v", ErrInvalidOption, total)
	}
	if err := m.clock.Schedule(tl); err != nil {
		return fmt.Errorf("start %s: %w", kind, err)
	}

	k := keyOf(el, kind)
	if old, ok := m.handles[k]; ok {
		old.kill()
		m.logf("effect: superseded kind=%s", kind)
	}
	h := &handle{
		tl:    tl,
		rest:  rest.Clone(),
		micro: tween.Weak(el.Micro()),
		color: tween.Weak(el.Color()),
	}
	m.handles[k] = h
	tl.OnComplete(func() {
		if m.handles[k] == h {
			delete(m.handles, k)
			h.cutoff.Kill()
		}
	})

	if total > 0 {
		cutoff, err := m.clock.After(total, func() {
			if m.handles[k] != h {
				return
			}
			if err := m.stop(k, h, DefaultRestore()); err != nil {
				m.logf("effect: cutoff kind=%s: %v", kind, err)
			}
		})
		if err != nil {
			h.kill()
			delete(m.handles, k)
			return fmt.Errorf("start %s: %w", kind, err)
		}
		h.cutoff = cutoff
	}
	return nil
}

// Stop kills the timeline registered for (el, kind) and plays r back to the
// rest values. It does nothing when no such timeline is registered.
func (m *Manager) Stop(el component.Element, kind Kind, r Restore) error {
	if component.Check(el) != nil {
		return nil
	}
	k := keyOf(el, kind)
	h, ok := m.handles[k]
	if !ok {
		return nil
	}
	return m.stop(k, h, r)
}

func (m *Manager) stop(k key, h *handle, r Restore) error {
	kind := k.kind
	if k.id.Value() == nil {
		h.kill()
		delete(m.handles, k)
		return nil
	}
	to := r.To
	if len(to) == 0 {
		to = h.rest
	}
	if len(to) == 0 {
		to = RestValues()
	}
	tl, err := restoreTimeline(h.micro, h.color, to, r)
	if err != nil {
		return fmt.Errorf("stop %s: %w", kind, err)
	}

	h.kill()
	delete(m.handles, k)
	m.logf("effect: stopped kind=%s duration=%v", kind, r.Duration)
	if err := m.clock.Schedule(tl); err != nil {
		return fmt.Errorf("stop %s: %w", kind, err)
	}
	return nil
}

func restoreTimeline(micro, color tween.Target, to tween.Values, r Restore) (*tween.Timeline, error) {
	fn := r.Ease
	if fn == nil {
		fn = ease.MustLookup(ease.PowerInOut)
	}
	transform := make(tween.Values, len(to))
	alpha := tween.Values{}
	for p, v := range to {
		if p == tween.Alpha {
			alpha[p] = v
			continue
		}
		transform[p] = v
	}

	tl := tween.NewTimeline(tween.Options{})
	if len(transform) > 0 {
		if err := tl.Add(tween.Tween{Target: micro, To: transform, Duration: r.Duration, Ease: fn}); err != nil {
			return nil, err
		}
	}
	if len(alpha) > 0 {
		if err := tl.Add(tween.Tween{Target: color, To: alpha, Duration: r.Duration, Ease: fn}); err != nil {
			return nil, err
		}
	}
	return tl, tl.Validate()
}

// Active reports whether a live timeline is registered for (el, kind).
func (m *Manager) Active(el component.Element, kind Kind) bool {
	if m == nil || component.Check(el) != nil {
		return false
	}
	h, ok := m.handles[keyOf(el, kind)]
	return ok && h.tl.Live()
}

// Len is the number of registered handles.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.handles)
}

// Release kills every effect registered for el without restoring anything.
// Call it when the element is disposed.
func (m *Manager) Release(el component.Element) int {
	if m == nil || component.Check(el) != nil {
		return 0
	}
	id := weak.Make(el.Micro())
	n := 0
	for k, h := range m.handles {
		if k.id != id {
			continue
		}
		h.kill()
		delete(m.handles, k)
		n++
	}
	if n > 0 {
		m.logf("effect: released %d effects", n)
	}
	return n
}

// Prune drops handles whose element was collected or whose timeline is no
// longer live, and returns how many it dropped.
func (m *Manager) Prune() int {
	if m == nil {
		return 0
	}
	n := 0
	for k, h := range m.handles {
		if k.id.Value() != nil && h.tl.Live() {
			continue
		}
		h.kill()
		delete(m.handles, k)
		n++
	}
	return n
}

func (m *Manager) logf(format string, args ...any) {
	if m.Logf != nil {
		m.Logf(format, args...)
	}
}
