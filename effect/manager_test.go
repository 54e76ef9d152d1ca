package effect

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/tween"
)

func loopX(t *testing.T, el component.Element, to float64) *tween.Timeline {
	t.Helper()
	tl := tween.NewTimeline(tween.Options{Repeat: tween.Infinite})
	if err := tl.Add(tween.Tween{Target: el.Micro(), To: tween.Values{tween.X: to}, Duration: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return tl
}

func TestManagerStartSupersedesSameKind(t *testing.T) {
	clock := tween.NewClock()
	m := NewManager(clock)
	var logs []string
	m.Logf = func(format string, args ...any) { logs = append(logs, fmt.Sprintf(format, args...)) }
	n := component.NewNode()

	first := loopX(t, n, 10)
	if err := m.Start(n, KindPulse, first); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.Tick(0.5)
	if n.Micro().X != 5 {
		t.Fatalf("expected x=5, got %v", n.Micro().X)
	}

	second := tween.NewTimeline(tween.Options{Repeat: tween.Infinite})
	if err := second.Add(tween.Tween{Target: n.Micro(), To: tween.Values{tween.Y: 4}, Duration: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Start(n, KindPulse, second); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !first.Killed() {
		t.Fatalf("superseded timeline was not killed")
	}
	if m.Len() != 1 || !m.Active(n, KindPulse) {
		t.Fatalf("expected exactly one active handle, Len=%d", m.Len())
	}
	clock.Tick(0.25)
	if n.Micro().X != 5 {
		t.Fatalf("killed timeline kept writing x: %v", n.Micro().X)
	}
	if clock.Len() != 1 {
		t.Fatalf("expected one timeline on the clock, got %d", clock.Len())
	}
	if len(logs) != 1 || !strings.Contains(logs[0], "superseded kind=pulse") {
		t.Fatalf("unexpected logs: %q", logs)
	}
}

func TestManagerKindsCoexist(t *testing.T) {
	m := NewManager(nil)
	n := component.NewNode()
	if err := m.Start(n, KindPulse, loopX(t, n, 1)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := m.Start(n, KindSpinCall, loopX(t, n, 2)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if m.Len() != 2 || !m.Active(n, KindPulse) || !m.Active(n, KindSpinCall) {
		t.Fatalf("different kinds on one element must coexist")
	}
	other := component.NewNode()
	if m.Active(other, KindPulse) {
		t.Fatalf("handles must be keyed by element identity")
	}
}

func TestManagerStopWithoutHandleIsNoop(t *testing.T) {
	clock := tween.NewClock()
	m := NewManager(clock)
	n := component.NewNode()
	n.Micro().X = 3
	for i := 0; i < 2; i++ {
		if err := m.Stop(n, KindSwipeCall, DefaultRestore()); err != nil {
			t.Fatalf("Stop: %v", err)
		}
	}
	if err := m.Stop(nil, KindSwipeCall, DefaultRestore()); err != nil {
		t.Fatalf("Stop(nil): %v", err)
	}
	if clock.Len() != 0 {
		t.Fatalf("stop without handle scheduled %d timelines", clock.Len())
	}
	clock.Tick(1)
	if n.Micro().X != 3 {
		t.Fatalf("stop without handle mutated x: %v", n.Micro().X)
	}
}

func TestManagerStopRestoresRest(t *testing.T) {
	clock := tween.NewClock()
	m := NewManager(clock)
	n := component.NewNode()
	tl := loopX(t, n, 8)
	if err := m.Start(n, KindPulse, tl); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.Tick(0.5)
	n.Micro().Rotation = 0.3

	if err := m.Stop(n, KindPulse, DefaultRestore()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !tl.Killed() || m.Active(n, KindPulse) || m.Len() != 0 {
		t.Fatalf("stop must kill and discard the handle")
	}
	if n.Micro().X != 4 {
		t.Fatalf("kill must not rewind, x=%v", n.Micro().X)
	}
	clock.Tick(0.125)
	clock.Tick(0.125)
	got := *n.Micro()
	if got.X != 0 || got.Rotation != 0 || got.ScaleX != 1 || got.ScaleY != 1 {
		t.Fatalf("expected rest transform, got %+v", got)
	}
	if err := m.Stop(n, KindPulse, DefaultRestore()); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestManagerStopCustomRestIncludesAlpha(t *testing.T) {
	clock := tween.NewClock()
	m := NewManager(clock)
	n := component.NewNode()
	if err := m.Start(n, KindShake, loopX(t, n, 1)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r := Restore{To: tween.Values{tween.Alpha: 0.5, tween.Y: 2}, Duration: 0}
	if err := m.Stop(n, KindShake, r); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	clock.Tick(0)
	if n.Color().A != 0.5 || n.Micro().Y != 2 {
		t.Fatalf("custom rest not applied: a=%v y=%v", n.Color().A, n.Micro().Y)
	}
}

func TestManagerRejectsInvalidStart(t *testing.T) {
	m := NewManager(nil)
	n := component.NewNode()
	cases := []struct {
		name string
		el   component.Element
		kind Kind
		tl   *tween.Timeline
		want error
	}{
		{"nil_element", nil, KindPulse, tween.NewTimeline(tween.Options{}), component.ErrNilElement},
		{"empty_kind", n, "", tween.NewTimeline(tween.Options{}), ErrEmptyKind},
		{"nil_timeline", n, KindPulse, nil, tween.ErrNilTimeline},
		{"zero_loop", n, KindPulse, tween.NewTimeline(tween.Options{Repeat: tween.Infinite}), tween.ErrZeroLengthLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := m.Start(tc.el, tc.kind, tc.tl); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if m.Len() != 0 {
				t.Fatalf("failed start registered a handle")
			}
		})
	}
}

func TestManagerNaturalCompletionRemovesHandle(t *testing.T) {
	clock := tween.NewClock()
	m := NewManager(clock)
	n := component.NewNode()
	tl := tween.NewTimeline(tween.Options{Repeat: 1})
	if err := tl.Add(tween.Tween{Target: n.Micro(), To: tween.Values{tween.Y: 1}, Duration: 0.5}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Start(n, KindJumpCall, tl); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.Tick(0.5)
	if m.Len() != 1 {
		t.Fatalf("handle removed before the last cycle")
	}
	clock.Tick(0.5)
	if m.Len() != 0 {
		t.Fatalf("finished effect left its handle behind")
	}
}

func TestManagerReleaseKillsWithoutRestore(t *testing.T) {
	clock := tween.NewClock()
	m := NewManager(clock)
	n := component.NewNode()
	if err := m.Start(n, KindPulse, loopX(t, n, 10)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := m.Start(n, KindSwipeCall, loopX(t, n, 10)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.Tick(0.5)
	if got := m.Release(n); got != 2 {
		t.Fatalf("expected 2 released, got %d", got)
	}
	clock.Tick(1)
	if n.Micro().X != 5 || clock.Len() != 0 {
		t.Fatalf("release must stop writes without restoring, x=%v", n.Micro().X)
	}
}

// startOnDropped starts a looping effect on a node nothing else references.
func startOnDropped(t *testing.T, start func(el component.Element) error) {
	t.Helper()
	n := component.NewNode()
	if err := start(n); err != nil {
		t.Fatalf("start: %v", err)
	}
}

func TestManagerPruneDropsCollectedElements(t *testing.T) {
	cases := []struct {
		name  string
		start func(a *Animator, el component.Element) error
	}{
		{"pulse", func(a *Animator, el component.Element) error {
			return a.Pulse(DefaultPulseOptions(), el)
		}},
		{"swipe", func(a *Animator, el component.Element) error {
			return a.SwipeCall(DefaultSwipeOptions(), el)
		}},
		{"shake_with_cutoff", func(a *Animator, el component.Element) error {
			opts := DefaultShakeOptions()
			opts.TotalDuration = 5
			return a.Shake(opts, el)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := New(nil)
			startOnDropped(t, func(el component.Element) error { return tc.start(a, el) })
			a.Tick(0.1)
			if a.Manager().Len() != 1 {
				t.Fatalf("expected one handle, got %d", a.Manager().Len())
			}
			runtime.GC()
			runtime.GC()
			a.Tick(0.1)
			if got := a.Manager().Prune(); got != 1 {
				t.Fatalf("expected the collected element to be pruned, got %d", got)
			}
			a.Tick(0.1)
			if a.Manager().Len() != 0 || a.Clock().Len() != 0 {
				t.Fatalf("collected element left len=%d timelines=%d", a.Manager().Len(), a.Clock().Len())
			}
		})
	}
}

func TestManagerCutoffAfterCollectionIsQuiet(t *testing.T) {
	a := New(nil)
	var logs []string
	a.Manager().Logf = func(format string, args ...any) { logs = append(logs, fmt.Sprintf(format, args...)) }
	startOnDropped(t, func(el component.Element) error {
		opts := DefaultPulseOptions()
		opts.TotalDuration = 0.5
		return a.Pulse(opts, el)
	})
	runtime.GC()
	runtime.GC()
	for i := 0; i < 10; i++ {
		a.Tick(0.1)
	}
	if a.Manager().Len() != 0 {
		t.Fatalf("cutoff kept the handle of a collected element")
	}
	for _, l := range logs {
		if strings.Contains(l, "cutoff") {
			t.Fatalf("cutoff failed on a collected element: %q", l)
		}
	}
}

func TestManagerPruneDropsDeadTimelines(t *testing.T) {
	m := NewManager(nil)
	n := component.NewNode()
	tl := loopX(t, n, 1)
	if err := m.Start(n, KindPulse, tl); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if m.Prune() != 0 {
		t.Fatalf("live handle pruned")
	}
	tl.Kill()
	if m.Prune() != 1 || m.Len() != 0 {
		t.Fatalf("killed timeline not pruned")
	}
}
