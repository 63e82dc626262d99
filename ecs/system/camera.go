package system

import (
	"github.com/milk9111/bonecollector/common"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases every camera toward its target's position.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		target, ok := ecs.Get(w, ecs.Entity(cam.Target), component.TransformComponent.Kind())
		if !ok {
			return
		}
		t := common.Clamp01(cam.Smoothness)
		cam.Position.X = common.Lerp(cam.Position.X, target.Position.X, t)
		cam.Position.Y = common.Lerp(cam.Position.Y, target.Position.Y, t)
	})
}
