package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID keys one component store in a world. Zero is never assigned.
type ID uint32

var lastID atomic.Uint32

// Kind is the typed key of a component store. Its name only labels errors
// and log lines; two kinds with the same name are still distinct stores.
type Kind[T any] struct {
	id   ID
	name string
}

func NewKind[T any](name string) Kind[T] {
	return Kind[T]{id: ID(lastID.Add(1)), name: name}
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Name() string {
	if k.name == "" {
		return "unnamed"
	}
	return k.name
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}

// Handle is the package-level declaration of a widget component, e.g.
// WidgetComponent.
type Handle[T any] struct {
	kind Kind[T]
}

func NewComponent[T any](name string) Handle[T] {
	return Handle[T]{kind: NewKind[T](name)}
}

func (h Handle[T]) Kind() Kind[T] {
	return h.kind
}
