package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
)

// RegisterPartCatalogs queues the shared catalogs of every bone part.
func RegisterPartCatalogs(w *ecs.World, spec *prefabs.PartsSpec) error {
	catalogs, err := spec.Catalogs()
	if err != nil {
		return err
	}
	for _, c := range catalogs {
		ecs.Send(w, component.AddCatalogEvent, component.AddCatalog{Catalog: c})
	}
	return nil
}

// NewBonePart spawns a spinning collectable part at pos.
func NewBonePart(w *ecs.World, spec *prefabs.PartsSpec, kind animation.Archetype, pos cp.Vector) (ecs.Entity, error) {
	if kind.IsSkeleton() {
		return 0, fmt.Errorf("bone part: %s is not a part", kind)
	}
	partSpec, ok := spec.Part(kind)
	if !ok {
		return 0, fmt.Errorf("bone part: no scene for %s", kind)
	}

	part := ecs.CreateEntity(w)
	if err := ecs.Add(w, part, component.NameComponent.Kind(), &component.Name{Value: kind.String()}); err != nil {
		return 0, fmt.Errorf("bone part: add name: %w", err)
	}
	if err := ecs.Add(w, part, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
		return 0, fmt.Errorf("bone part: add transform: %w", err)
	}
	if err := ecs.Add(w, part, component.BonePartComponent.Kind(), &component.BonePart{Item: kind}); err != nil {
		return 0, fmt.Errorf("bone part: add part: %w", err)
	}
	if err := ecs.Add(w, part, component.CreatureComponent.Kind(), &component.Creature{
		Archetype: kind,
		Current:   animation.ClipNone,
		Initial:   animation.Request{Clip: animation.FirstClip},
	}); err != nil {
		return 0, fmt.Errorf("bone part: add creature: %w", err)
	}
	if err := ecs.Add(w, part, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:   component.BodyKinematic,
		Radius: spec.Radius,
		Sensor: true,
		Spin:   spec.Spin,
	}); err != nil {
		return 0, fmt.Errorf("bone part: add physics body: %w", err)
	}
	if err := ecs.Add(w, part, component.SceneSpawnRequestComponent.Kind(), &component.SceneSpawnRequest{
		Scene:     partSpec.Scene,
		Archetype: kind,
		Offset:    partSpec.Offset.Vector(),
	}); err != nil {
		return 0, fmt.Errorf("bone part: add scene request: %w", err)
	}

	return part, nil
}
