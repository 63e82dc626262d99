package component

import "sync/atomic"

type EventID uint32

var nextEventID atomic.Uint32

// EventKind identifies a typed event queue on the world.
type EventKind[T any] struct {
	id EventID
}

func NewEventKind[T any]() EventKind[T] {
	return EventKind[T]{id: EventID(nextEventID.Add(1))}
}

func (k EventKind[T]) ID() EventID {
	return k.id
}

func (k EventKind[T]) Valid() bool {
	return k.id != 0
}
