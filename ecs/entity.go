package ecs

import (
	"math"
	"strconv"
)

// Entity is a widget handle. The low half indexes the entity table and the
// high half is the generation of that slot, so a handle kept past
// DestroyEntity never matches the widget that reuses the slot.
type Entity uint64

// NoEntity is the zero handle. It is never alive.
const NoEntity Entity = 0

type (
	entityID   uint32
	generation uint32
)

const generationShift = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<generationShift | Entity(id)
}

func (e Entity) id() entityID {
	return entityID(e & math.MaxUint32)
}

func (e Entity) generation() generation {
	return generation(e >> generationShift)
}

// String formats e as id/generation, e.g. "3/1".
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "/" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e != NoEntity
}
