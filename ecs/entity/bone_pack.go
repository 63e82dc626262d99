package entity

import (
	"fmt"

	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
)

func NewBonePack(w *ecs.World, spec *prefabs.PartsSpec) (ecs.Entity, error) {
	items, err := spec.PackItems()
	if err != nil {
		return 0, fmt.Errorf("bone pack: %w", err)
	}

	pack := ecs.CreateEntity(w)
	if err := ecs.Add(w, pack, component.NameComponent.Kind(), &component.Name{Value: "bone_pack"}); err != nil {
		return 0, fmt.Errorf("bone pack: add name: %w", err)
	}
	if err := ecs.Add(w, pack, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Pack.Position.World(),
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("bone pack: add transform: %w", err)
	}
	if err := ecs.Add(w, pack, component.BonePackComponent.Kind(), &component.BonePack{Parts: items}); err != nil {
		return 0, fmt.Errorf("bone pack: add pack: %w", err)
	}
	if err := ecs.Add(w, pack, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:   component.BodyStatic,
		Radius: spec.Pack.Radius,
		Sensor: true,
	}); err != nil {
		return 0, fmt.Errorf("bone pack: add physics body: %w", err)
	}

	return pack, nil
}
