package entity

import (
	"fmt"

	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.LevelSpec, target ecs.Entity) (ecs.Entity, error) {
	smooth := spec.Camera.Smoothness
	if smooth == 0 {
		smooth = 0.1
	}
	zoom := spec.Camera.Zoom
	if zoom == 0 {
		zoom = 1
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	cam := &component.Camera{
		Target:     uint64(target),
		Zoom:       zoom,
		Smoothness: smooth,
	}
	if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		cam.Position = t.Position
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
