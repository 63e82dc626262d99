package entity

import (
	"fmt"

	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
)

func NewEndZone(w *ecs.World, spec *prefabs.LevelSpec) (ecs.Entity, error) {
	zone := ecs.CreateEntity(w)
	if err := ecs.Add(w, zone, component.NameComponent.Kind(), &component.Name{Value: "end_zone"}); err != nil {
		return 0, fmt.Errorf("end zone: add name: %w", err)
	}
	if err := ecs.Add(w, zone, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.EndZone.Position.World(),
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("end zone: add transform: %w", err)
	}
	if err := ecs.Add(w, zone, component.EndZoneComponent.Kind(), &component.EndZone{Text: spec.EndZone.Text}); err != nil {
		return 0, fmt.Errorf("end zone: add zone: %w", err)
	}
	if err := ecs.Add(w, zone, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:   component.BodyStatic,
		Width:  spec.EndZone.Size,
		Height: spec.EndZone.Size,
		Sensor: true,
	}); err != nil {
		return 0, fmt.Errorf("end zone: add physics body: %w", err)
	}
	return zone, nil
}
