package script

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"

	"github.com/milk9111/uifx/component"
	"github.com/milk9111/uifx/effect"
	"github.com/milk9111/uifx/prefabs"
)

// engine builds the functions a script sees. Every function takes an
// optional last argument naming the target widgets (a name or an array of
// names); without it the script's own widget is the target.
func (r *Runtime) engine(self string) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	// play(preset, [targets]) runs a preset from prefabs/effects.
	values["play"] = r.fn("play", self, func(args []tengo.Object, els []component.Element) error {
		p, err := r.LoadPreset(objectAsString(args[0]))
		if err != nil {
			return err
		}
		_, err = p.Play(r.animator, els...)
		return err
	})

	// effect(name, options, [targets]) runs a catalog effect with option
	// overrides over its defaults.
	values["effect"] = r.fn("effect", self, func(args []tengo.Object, els []component.Element) error {
		name := objectAsString(args[0])
		if !prefabs.KnownEffect(name) {
			return fmt.Errorf("%w: %q", prefabs.ErrUnknownEffect, name)
		}
		p := prefabs.Preset{Name: name, Effect: name}
		if len(args) > 1 && args[1] != tengo.UndefinedValue {
			opts, ok := objectToAny(args[1]).(map[string]any)
			if !ok {
				return tengo.ErrInvalidArgumentType{Name: "options", Expected: "map", Found: args[1].TypeName()}
			}
			p = p.With(opts)
		}
		_, err := p.Play(r.animator, els...)
		return err
	})

	// stop(preset_or_kind, [targets]) stops a looping effect with the
	// preset's stop options, or the defaults for a bare kind.
	values["stop"] = r.fn("stop", self, func(args []tengo.Object, els []component.Element) error {
		name := objectAsString(args[0])
		if prefabs.Looping(name) {
			if p, err := r.LoadPreset(name); err == nil {
				return p.StopOn(r.animator, els...)
			}
			return r.animator.Stop(effect.Kind(name), effect.DefaultStopOptions(), els...)
		}
		p, err := r.LoadPreset(name)
		if err != nil {
			return err
		}
		return p.StopOn(r.animator, els...)
	})

	// stop_all([targets]) stops every looping kind.
	values["stop_all"] = &tengo.UserFunction{Name: "stop_all", Value: func(args ...tengo.Object) (tengo.Object, error) {
		var target tengo.Object
		if len(args) > 0 {
			target = args[0]
		}
		els := r.targets(self, target)
		for _, k := range effect.Kinds() {
			if err := r.animator.Stop(k, effect.DefaultStopOptions(), els...); err != nil {
				r.logf("script: widget=%s stop_all %s error: %v", self, k, err)
				return tengo.FalseValue, nil
			}
		}
		return tengo.TrueValue, nil
	}}

	// active(kind, [target]) reports whether kind runs on every target.
	values["active"] = &tengo.UserFunction{Name: "active", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		var target tengo.Object
		if len(args) > 1 {
			target = args[1]
		}
		els := r.targets(self, target)
		if len(els) == 0 {
			return tengo.FalseValue, nil
		}
		kind := effect.Kind(objectAsString(args[0]))
		for _, el := range els {
			if !r.animator.Manager().Active(el, kind) {
				return tengo.FalseValue, nil
			}
		}
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		r.logf("script: widget=%s %s", self, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

// fn wraps an effect call taking a name, optional extra arguments, and an
// optional trailing target. Failures are logged and reported as false.
func (r *Runtime) fn(name, self string, call func(args []tengo.Object, els []component.Element) error) *tengo.UserFunction {
	arity := 1
	if name == "effect" {
		arity = 2
	}
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 || strings.TrimSpace(objectAsString(args[0])) == "" {
			return tengo.FalseValue, nil
		}
		var target tengo.Object
		if len(args) > arity {
			target = args[arity]
		}
		els := r.targets(self, target)
		if len(els) == 0 {
			r.logf("script: widget=%s %s: no targets", self, name)
			return tengo.FalseValue, nil
		}
		if err := call(args, els); err != nil {
			r.logf("script: widget=%s %s error: %v", self, name, err)
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}
}

func (r *Runtime) targets(self string, target tengo.Object) []component.Element {
	var names []string
	switch v := objectToAny(target).(type) {
	case nil:
		names = []string{self}
	case string:
		names = []string{v}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
	}
	els := make([]component.Element, 0, len(names))
	for _, n := range names {
		if r.host == nil {
			break
		}
		if el, ok := r.host.Element(n); ok {
			els = append(els, el)
		}
	}
	return els
}

func (r *Runtime) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.ImmutableArray:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
