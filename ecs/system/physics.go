package system

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

const collisionTypeEntity cp.CollisionType = 1

// PhysicsSystem mirrors PhysicsBody components into a top-down Chipmunk
// space, steps it and reports contacts as CollisionEvents. Events stay
// readable until the next step.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	dt            float64
	log           *zap.Logger

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	pending  []component.CollisionEvent
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
	kind  component.BodyType
}

func NewPhysicsSystem(step time.Duration, log *zap.Logger) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:    space,
		dt:       step.Seconds(),
		log:      logging.OrNop(log).Named("physics"),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ecs.Drain(w, component.CollisionEventKind)

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.applyVelocities(w)

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.flushCollisions(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.record(arb, true)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.record(arb, false)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) record(arb *cp.Arbiter, started bool) {
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return
	}
	ps.pending = append(ps.pending, component.CollisionEvent{A: uint64(a), B: uint64(b), Started: started})
}

func (ps *PhysicsSystem) flushCollisions(w *ecs.World) {
	for _, evt := range ps.pending {
		if !w.IsAlive(ecs.Entity(evt.A)) || !w.IsAlive(ecs.Entity(evt.B)) {
			continue
		}
		ecs.Send(w, component.CollisionEventKind, evt)
	}
	ps.pending = ps.pending[:0]
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			continue
		}

		info := ps.createBodyInfo(transform, bodyComp)
		ps.entities[e] = info
		ps.shapes[info.shape] = e
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		radius = 0.5
	}

	var body *cp.Body
	switch bodyComp.Type {
	case component.BodyStatic:
		body = cp.NewStaticBody()
	case component.BodyKinematic:
		body = cp.NewKinematicBody()
		body.SetAngularVelocity(bodyComp.Spin)
	default:
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// Infinite moment keeps top-down walkers upright.
		body = cp.NewBody(mass, cp.INFINITY)
	}
	body.SetPosition(transform.Position)
	body.SetAngle(transform.Rotation)

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetCollisionType(collisionTypeEntity)
	shape.SetSensor(bodyComp.Sensor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape, kind: bodyComp.Type}
}

func (ps *PhysicsSystem) applyVelocities(w *ecs.World) {
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil || bodyComp.Type == component.BodyStatic {
			return
		}
		bodyComp.Body.SetVelocityVector(bodyComp.Velocity)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Type == component.BodyStatic {
			return
		}
		transform.Position = bodyComp.Body.Position()
		if bodyComp.Type == component.BodyKinematic {
			transform.Rotation = bodyComp.Body.Angle()
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		ps.space.RemoveShape(info.shape)
		ps.space.RemoveBody(info.body)
		delete(ps.shapes, info.shape)
		delete(ps.entities, e)
		ps.log.Debug("body removed", zap.Stringer("entity", e))
	}
}
