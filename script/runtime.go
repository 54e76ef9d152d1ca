// Package script runs tengo scripts attached to UI widgets. A script defines
// on_click(engine, self, state) and drives effects through the engine map.
package script

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/effect"
	"github.com/milk9111/uifx/prefabs"
)

var ErrNoScript = errors.New("script: empty script path")

// Host resolves widget names to elements.
type Host interface {
	Element(name string) (component.Element, bool)
}

// HostFunc adapts a lookup function to Host.
type HostFunc func(name string) (component.Element, bool)

func (f HostFunc) Element(name string) (component.Element, bool) {
	return f(name)
}

const dispatchScript = `
if __event == "click" {
	on_click(__engine, __self, __state)
}
`

// Runtime compiles scripts once per (path, widget) and runs their event
// handlers against an Animator.
type Runtime struct {
	animator *effect.Animator
	host     Host
	cache    map[programKey]*program

	// LoadScript and LoadPreset default to the prefabs loaders.
	LoadScript func(name string) ([]byte, error)
	LoadPreset func(name string) (prefabs.Preset, error)
	// Logf receives script log lines and effect failures; nil uses log.Printf.
	Logf func(format string, args ...any)
}

type programKey struct {
	path string
	self string
}

type program struct {
	compiled *tengo.Compiled
	state    *tengo.Map
}

func NewRuntime(animator *effect.Animator, host Host) *Runtime {
	return &Runtime{
		animator:   animator,
		host:       host,
		cache:      make(map[programKey]*program),
		LoadScript: prefabs.LoadScript,
		LoadPreset: prefabs.LoadPreset,
	}
}

// Click runs the on_click handler of the script file for the widget named
// self.
func (r *Runtime) Click(file, self string) error {
	return r.run(file, self, "click")
}

func (r *Runtime) run(file, self, event string) error {
	if r == nil {
		return fmt.Errorf("script: nil runtime")
	}
	p, err := r.program(file, self)
	if err != nil {
		return err
	}
	engine := r.engine(self)
	if err := p.compiled.Set("__event", event); err != nil {
		return err
	}
	if err := p.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := p.compiled.Set("__self", self); err != nil {
		return err
	}
	if err := p.compiled.Set("__state", p.state); err != nil {
		return err
	}
	if err := p.compiled.Run(); err != nil {
		return fmt.Errorf("script: %s: %w", file, err)
	}
	return nil
}

func (r *Runtime) program(file, self string) (*program, error) {
	file = strings.TrimSpace(file)
	if file == "" {
		return nil, ErrNoScript
	}
	key := programKey{path: file, self: self}
	if p, ok := r.cache[key]; ok {
		return p, nil
	}

	src, err := r.LoadScript(file)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", file, err)
	}
	s := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = s.Add("__event", "")
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__self", "")
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", file, err)
	}
	p := &program{compiled: compiled, state: &tengo.Map{Value: map[string]tengo.Object{}}}
	r.cache[key] = p
	return p, nil
}

// Invalidate drops the compiled copies of the script file name so the next
// event reloads it. Their script state is reset.
func (r *Runtime) Invalidate(name string) int {
	if r == nil {
		return 0
	}
	n := 0
	for key := range r.cache {
		if path.Base(filepath.ToSlash(key.path)) == path.Base(filepath.ToSlash(name)) {
			delete(r.cache, key)
			n++
		}
	}
	return n
}
