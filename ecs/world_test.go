package ecs

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	ui "github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/ecs/component"
)

// spawn creates a widget entity named name with the given bounds.
func spawn(t *testing.T, w *World, name string, b component.Bounds) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.WidgetComponent.Kind(), &component.Widget{Name: name, Element: ui.NewNode()}); err != nil {
		t.Fatalf("add widget %s: %v", name, err)
	}
	if err := Add(w, e, component.BoundsComponent.Kind(), &b); err != nil {
		t.Fatalf("add bounds %s: %v", name, err)
	}
	return e
}

func names(w *World, ents []Entity) []string {
	out := make([]string, 0, len(ents))
	for _, e := range ents {
		if widget, ok := Get(w, e, component.WidgetComponent.Kind()); ok {
			out = append(out, widget.Name)
		}
	}
	return out
}

func TestWidgetLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		widgets []string
		destroy string
		want    []string
	}{
		{"single", []string{"play"}, "play", []string{}},
		{"destroy_middle", []string{"play", "shop", "gift"}, "shop", []string{"play", "gift"}},
		{"keep_all", []string{"play", "shop"}, "", []string{"play", "shop"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			byName := map[string]Entity{}
			for _, n := range tc.widgets {
				byName[n] = spawn(t, w, n, component.Bounds{W: 10, H: 10})
			}
			if tc.destroy != "" {
				e := byName[tc.destroy]
				if !DestroyEntity(w, e) {
					t.Fatalf("DestroyEntity(%s) reported false", tc.destroy)
				}
				if IsAlive(w, e) || Has(w, e, component.BoundsComponent.Kind()) {
					t.Fatalf("%s survived destruction", tc.destroy)
				}
			}
			got := names(w, w.Query(component.WidgetComponent.Kind()))
			if !slices.Equal(got, tc.want) {
				t.Fatalf("expected widgets %v, got %v", tc.want, got)
			}
			if len(Entities(w)) != len(tc.want) {
				t.Fatalf("expected %d entities, got %d", len(tc.want), len(Entities(w)))
			}
		})
	}
}

func TestWidgetComponentTable(t *testing.T) {
	w := NewWorld()
	e := spawn(t, w, "alert", component.Bounds{X: 860, Y: 400, W: 180, H: 64})

	tests := []struct {
		name   string
		add    func() error
		check  func(t *testing.T)
		remove func() bool
	}{
		{
			name: "label",
			add: func() error {
				return Add(w, e, component.LabelComponent.Kind(), &component.Label{Text: "Alert"})
			},
			check: func(t *testing.T) {
				l, ok := Get(w, e, component.LabelComponent.Kind())
				if !ok || l.Text != "Alert" {
					t.Fatalf("expected label Alert, got %v ok=%v", l, ok)
				}
			},
			remove: func() bool { return Remove(w, e, component.LabelComponent.Kind()) },
		},
		{
			name: "attention",
			add: func() error {
				return Add(w, e, component.AttentionComponent.Kind(), &component.Attention{Preset: "shake"})
			},
			check: func(t *testing.T) {
				if !Has(w, e, component.AttentionComponent.Kind()) {
					t.Fatalf("expected an attention cue")
				}
			},
			remove: func() bool { return Remove(w, e, component.AttentionComponent.Kind()) },
		},
		{
			name: "script_replaced",
			add: func() error {
				if err := Add(w, e, component.ScriptComponent.Kind(), &component.Script{Path: "dismiss.tengo"}); err != nil {
					return err
				}
				return Add(w, e, component.ScriptComponent.Kind(), &component.Script{Path: "toggle.tengo"})
			},
			check: func(t *testing.T) {
				s, ok := Get(w, e, component.ScriptComponent.Kind())
				if !ok || s.Path != "toggle.tengo" {
					t.Fatalf("second add should replace the script, got %v", s)
				}
			},
			remove: func() bool { return Remove(w, e, component.ScriptComponent.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.add(); err != nil {
				t.Fatalf("add: %v", err)
			}
			tc.check(t)
			if !tc.remove() {
				t.Fatalf("remove reported false")
			}
			if tc.remove() {
				t.Fatalf("second remove reported true")
			}
		})
	}
	if b, ok := Get(w, e, component.BoundsComponent.Kind()); !ok || b.W != 180 {
		t.Fatalf("unrelated bounds were disturbed: %v", b)
	}
}

func TestForEachVisitsWidgetsInIDOrder(t *testing.T) {
	w := NewWorld()
	first := spawn(t, w, "first", component.Bounds{})
	spawn(t, w, "second", component.Bounds{})
	DestroyEntity(w, first)
	spawn(t, w, "third", component.Bounds{})

	var got []string
	ForEach(w, component.WidgetComponent.Kind(), func(_ Entity, widget *component.Widget) {
		got = append(got, widget.Name)
	})
	if !slices.Equal(got, []string{"third", "second"}) {
		t.Fatalf("expected the recycled slot first, got %v", got)
	}
}

func TestForEach2AndForEach3(t *testing.T) {
	w := NewWorld()
	spawn(t, w, "plain", component.Bounds{})
	labelled := spawn(t, w, "labelled", component.Bounds{})
	scripted := spawn(t, w, "scripted", component.Bounds{})
	orphan := CreateEntity(w)

	for _, e := range []Entity{labelled, scripted, orphan} {
		if err := Add(w, e, component.LabelComponent.Kind(), &component.Label{Text: "x"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := Add(w, scripted, component.ScriptComponent.Kind(), &component.Script{Path: "dismiss.tengo"}); err != nil {
		t.Fatal(err)
	}

	var two []Entity
	ForEach2(w, component.WidgetComponent.Kind(), component.LabelComponent.Kind(), func(e Entity, _ *component.Widget, _ *component.Label) {
		two = append(two, e)
	})
	if !slices.Equal(two, []Entity{labelled, scripted}) {
		t.Fatalf("ForEach2: expected labelled and scripted, got %v", two)
	}

	var three []string
	ForEach3(w, component.WidgetComponent.Kind(), component.LabelComponent.Kind(), component.ScriptComponent.Kind(),
		func(_ Entity, widget *component.Widget, _ *component.Label, s *component.Script) {
			three = append(three, widget.Name+":"+s.Path)
		})
	if !slices.Equal(three, []string{"scripted:dismiss.tengo"}) {
		t.Fatalf("ForEach3: got %v", three)
	}

	DestroyEntity(w, scripted)
	three = nil
	ForEach3(w, component.WidgetComponent.Kind(), component.LabelComponent.Kind(), component.ScriptComponent.Kind(),
		func(_ Entity, widget *component.Widget, _ *component.Label, _ *component.Script) {
			three = append(three, widget.Name)
		})
	if len(three) != 0 {
		t.Fatalf("destroyed widget still visited: %v", three)
	}

	visited := false
	ForEach2(w, component.WidgetComponent.Kind(), component.AttentionComponent.Kind(), func(Entity, *component.Widget, *component.Attention) {
		visited = true
	})
	if visited {
		t.Fatalf("ForEach2 over an empty store visited a widget")
	}
}

func TestEntityGenerationsAreRecycled(t *testing.T) {
	w := NewWorld()
	old := spawn(t, w, "old", component.Bounds{})
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy widget")
	}
	if DestroyEntity(w, old) {
		t.Fatal("second destroy must report false")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() || reused == old {
		t.Fatalf("expected recycled id with new generation, old=%v new=%v", old, reused)
	}
	if old.String() != "1/0" || reused.String() != "1/1" {
		t.Fatalf("unexpected handles %s and %s", old, reused)
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle reported alive")
	}
	if Has(w, reused, component.WidgetComponent.Kind()) {
		t.Fatal("recycled entity inherited a widget")
	}
	err := Add(w, old, component.LabelComponent.Kind(), &component.Label{Text: "stale"})
	if !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	cases := []struct {
		name     string
		add      func() error
		want     error
		mentions string
	}{
		{"zero_kind", func() error {
			return Add(w, e, component.Kind[component.Bounds]{}, &component.Bounds{})
		}, component.ErrInvalidKind, ""},
		{"nil_value", func() error {
			return Add(w, e, component.BoundsComponent.Kind(), nil)
		}, component.ErrNilComponent, "bounds"},
		{"dead_entity", func() error {
			return Add(w, NoEntity, component.LabelComponent.Kind(), &component.Label{})
		}, component.ErrEntityNotAlive, "label"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.add()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tc.mentions != "" && !strings.Contains(err.Error(), tc.mentions) {
				t.Fatalf("error %q should name the %s kind", err, tc.mentions)
			}
		})
	}
}

func TestEventQueueDrainByType(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventClick, Data: ClickEvent{Entity: 1, X: 240, Y: 240}})
	q.Push(Event{Type: "hover"})
	q.Push(Event{Type: EventClick, Data: ClickEvent{Entity: 2, X: 550, Y: 240}})

	clicks := q.Drain(EventClick)
	if len(clicks) != 2 || clicks[1].Data.(ClickEvent).Entity != 2 {
		t.Fatalf("unexpected clicks %v", clicks)
	}
	if q.Len() != 1 {
		t.Fatalf("expected the hover event to remain, got %d", q.Len())
	}
	if rest := q.Drain(""); len(rest) != 1 || rest[0].Type != "hover" {
		t.Fatalf("unexpected rest %v", rest)
	}
}

// clickSystem clicks the widget named target once per frame.
type clickSystem struct {
	target string
	log    *[]string
}

func (s clickSystem) Update(w *World) {
	*s.log = append(*s.log, "click:"+s.target)
	for _, e := range w.Query(component.WidgetComponent.Kind()) {
		if widget, _ := Get(w, e, component.WidgetComponent.Kind()); widget.Name == s.target {
			w.Events().Push(Event{Type: EventClick, Data: ClickEvent{Entity: e}})
		}
	}
}

// countSystem records how many clicks it sees.
type countSystem struct {
	log *[]string
}

func (s countSystem) Update(w *World) {
	*s.log = append(*s.log, "seen:"+strconv.Itoa(len(w.Events().Drain(EventClick))))
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	spawn(t, w, "play", component.Bounds{})
	var log []string
	s := NewScheduler(clickSystem{"play", &log}, nil, countSystem{&log})
	s.Update(w)
	s.Add(clickSystem{"play", &log})
	s.Update(w)

	want := []string{"click:play", "seen:1", "click:play", "seen:1", "click:play"}
	if !slices.Equal(log, want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events must not outlive the frame")
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("nil system was registered")
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	play := spawn(t, w, "play", component.Bounds{})
	shop := spawn(t, w, "shop", component.Bounds{})
	if err := Add(w, shop, component.AttentionComponent.Kind(), &component.Attention{Preset: "jump-call"}); err != nil {
		t.Fatal(err)
	}

	if got := w.Query(component.WidgetComponent.Kind()); !slices.Equal(got, []Entity{play, shop}) {
		t.Fatalf("expected [play shop] in id order, got %v", got)
	}
	if got := w.Query(component.WidgetComponent.Kind(), component.AttentionComponent.Kind()); !slices.Equal(got, []Entity{shop}) {
		t.Fatalf("expected [shop], got %v", got)
	}
	if e, ok := w.First(component.AttentionComponent.Kind()); !ok || e != shop {
		t.Fatalf("First = %v, %v", e, ok)
	}
	if _, ok := w.First(component.SpriteComponent.Kind()); ok {
		t.Fatalf("First on an empty store must fail")
	}
}
