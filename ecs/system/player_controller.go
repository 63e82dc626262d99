package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/common"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
)

// PlayerControllerSystem turns input into velocity and locomotion clips.
// Movement is locked while a non-locomotion clip plays.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach4(w,
		component.InputComponent.Kind(),
		component.PlayerControllerComponent.Kind(),
		component.CreatureComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, input *component.Input, ctrl *component.PlayerController, creature *component.Creature, body *component.PhysicsBody) {
			if !animation.CanMove(creature.Archetype, creature.Current) {
				body.Velocity = cp.Vector{}
				ctrl.Moving = false
				return
			}

			dir, ok := common.DirectionFromInput(input.MoveX, input.MoveY)
			if !ok {
				body.Velocity = cp.Vector{}
				ctrl.Moving = false
				if creature.Current == animation.Walk || creature.Current == animation.Run {
					requestClip(w, e, animation.Idle, true)
				}
				return
			}

			speed, clip := ctrl.WalkSpeed, animation.Walk
			if input.Run {
				speed, clip = ctrl.RunSpeed, animation.Run
			}
			body.Velocity = dir.Vector().Normalize().Mult(speed)
			creature.Direction = dir
			ctrl.Moving = true
			if creature.Current != clip {
				requestClip(w, e, clip, true)
			}
		})
}

func requestClip(w *ecs.World, e ecs.Entity, clip animation.ClipID, repeat bool) {
	ecs.Send(w, component.ChangeAnimationEvent, component.ChangeAnimation{
		Target: uint64(e),
		Clip:   clip,
		Repeat: repeat,
	})
}
