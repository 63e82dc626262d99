package entity

import (
	"fmt"

	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/common"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
)

// NewSkelly spawns the player skeleton in the given form and queues the
// catalogs of all its forms for registration.
func NewSkelly(w *ecs.World, spec *prefabs.SkellySpec, form component.Form) (ecs.Entity, error) {
	formSpec, ok := spec.Form(form.String())
	if !ok {
		return 0, fmt.Errorf("skelly: no scene for form %s", form)
	}
	initial, err := spec.Initial.Request()
	if err != nil {
		return 0, fmt.Errorf("skelly: initial request: %w", err)
	}

	skelly := ecs.CreateEntity(w)
	catalogs, err := spec.Catalogs(uint64(skelly), form.Archetype())
	if err != nil {
		ecs.DestroyEntity(w, skelly)
		return 0, fmt.Errorf("skelly: %w", err)
	}

	if err := ecs.Add(w, skelly, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("skelly: add player tag: %w", err)
	}
	if err := ecs.Add(w, skelly, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
		return 0, fmt.Errorf("skelly: add name: %w", err)
	}
	if err := ecs.Add(w, skelly, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Start.World(),
		Rotation: common.Up.Angle(),
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("skelly: add transform: %w", err)
	}
	if err := ecs.Add(w, skelly, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("skelly: add input: %w", err)
	}
	if err := ecs.Add(w, skelly, component.PlayerControllerComponent.Kind(), &component.PlayerController{
		WalkSpeed: spec.WalkSpeed,
		RunSpeed:  spec.RunSpeed,
	}); err != nil {
		return 0, fmt.Errorf("skelly: add controller: %w", err)
	}
	if err := ecs.Add(w, skelly, component.CreatureComponent.Kind(), &component.Creature{
		Archetype: form.Archetype(),
		Current:   animation.ClipNone,
		Initial:   initial,
		Direction: common.Up,
	}); err != nil {
		return 0, fmt.Errorf("skelly: add creature: %w", err)
	}
	if err := ecs.Add(w, skelly, component.SkellyFormComponent.Kind(), &component.SkellyForm{Form: form}); err != nil {
		return 0, fmt.Errorf("skelly: add form: %w", err)
	}
	if err := ecs.Add(w, skelly, component.InventoryComponent.Kind(), &component.Inventory{}); err != nil {
		return 0, fmt.Errorf("skelly: add inventory: %w", err)
	}
	if err := ecs.Add(w, skelly, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:   component.BodyDynamic,
		Radius: spec.Collider.Radius,
		Mass:   spec.Collider.Mass,
	}); err != nil {
		return 0, fmt.Errorf("skelly: add physics body: %w", err)
	}
	if err := ecs.Add(w, skelly, component.SceneSpawnRequestComponent.Kind(), &component.SceneSpawnRequest{
		Scene:     formSpec.Scene,
		Archetype: form.Archetype(),
		Offset:    formSpec.Offset.Vector(),
	}); err != nil {
		return 0, fmt.Errorf("skelly: add scene request: %w", err)
	}

	for _, c := range catalogs {
		ecs.Send(w, component.AddCatalogEvent, component.AddCatalog{Catalog: c})
	}

	return skelly, nil
}
