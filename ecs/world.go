package ecs

import (
	"fmt"

	"github.com/milk9111/bonecollector/ecs/component"
)

// World owns entities, their components and the typed event queues.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   map[component.EventID]any
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]store),
		events: make(map[component.EventID]any),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills e and drops every component attached to it.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// First returns the first live entity that has kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, e := range s.entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Query returns the live entities that have every listed kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}

	var out []Entity
outer:
	for _, e := range smallest.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range sets {
			if !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := newSparseSet[T]()
		w.stores[kind.ID()] = set
		return set
	}
	set, ok := s.(*sparseSet[T])
	if !ok {
		panic(fmt.Sprintf("ecs: component kind %d registered with another type", kind.ID()))
	}
	return set
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func First(w *World, kind component.Kind) (Entity, bool) {
	return w.First(kind)
}

func Entities(w *World) []Entity {
	return w.Entities()
}

// Add attaches value to e, replacing any previous component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e)
}
