package component

import "github.com/jakecoffman/cp"

type BodyType uint8

const (
	BodyDynamic BodyType = iota
	BodyKinematic
	BodyStatic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Radius > 0 selects a circle collider, otherwise a Width x Height box.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Type   BodyType
	Width  float64
	Height float64
	Radius float64
	Mass   float64
	Sensor bool
	Spin   float64

	Velocity cp.Vector
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// CollisionEvent reports two entities starting or stopping to touch.
type CollisionEvent struct {
	A       uint64
	B       uint64
	Started bool
}

// Involves returns the entity paired with e, if e is part of the event.
func (c CollisionEvent) Involves(e uint64) (uint64, bool) {
	switch e {
	case c.A:
		return c.B, true
	case c.B:
		return c.A, true
	}
	return 0, false
}

var CollisionEventKind = NewEventKind[CollisionEvent]()
