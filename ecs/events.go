package ecs

import "github.com/milk9111/bonecollector/ecs/component"

// eventQueue is a simple FIFO queue of one event type.
type eventQueue[T any] struct {
	items []T
}

func queueFor[T any](w *World, kind component.EventKind[T]) *eventQueue[T] {
	if q, ok := w.events[kind.ID()]; ok {
		return q.(*eventQueue[T])
	}
	q := &eventQueue[T]{}
	w.events[kind.ID()] = q
	return q
}

// Send queues an event. It stays queued until its consumer drains it, which
// may be in a later phase or a later tick.
func Send[T any](w *World, kind component.EventKind[T], evt T) {
	if w == nil || !kind.Valid() {
		return
	}
	q := queueFor(w, kind)
	q.items = append(q.items, evt)
}

// Drain returns all queued events of kind and clears the queue.
func Drain[T any](w *World, kind component.EventKind[T]) []T {
	if w == nil || !kind.Valid() {
		return nil
	}
	q := queueFor(w, kind)
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Pending reports how many events of kind are waiting.
func Pending[T any](w *World, kind component.EventKind[T]) int {
	if w == nil || !kind.Valid() {
		return 0
	}
	return len(queueFor(w, kind).items)
}

// Read returns the queued events of kind without consuming them, for events
// with several readers that the producer clears itself.
func Read[T any](w *World, kind component.EventKind[T]) []T {
	if w == nil || !kind.Valid() {
		return nil
	}
	return queueFor(w, kind).items
}
