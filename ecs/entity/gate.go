package entity

import (
	"fmt"

	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
)

// NewGate spawns the gate and the chain that opens it.
func NewGate(w *ecs.World, spec *prefabs.LevelSpec) (gate, chain ecs.Entity, err error) {
	requires, err := component.ParseForm(spec.Gate.Requires)
	if err != nil {
		return 0, 0, fmt.Errorf("gate: %w", err)
	}

	gate = ecs.CreateEntity(w)
	if err := ecs.Add(w, gate, component.NameComponent.Kind(), &component.Name{Value: "gate"}); err != nil {
		return 0, 0, fmt.Errorf("gate: add name: %w", err)
	}
	if err := ecs.Add(w, gate, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Gate.Position.World(),
		Rotation: spec.Gate.Rotation,
		Scale:    1,
	}); err != nil {
		return 0, 0, fmt.Errorf("gate: add transform: %w", err)
	}
	if err := ecs.Add(w, gate, component.GateComponent.Kind(), &component.Gate{
		Requires: requires,
		Step:     spec.Gate.Step,
		Limit:    spec.Gate.Limit,
	}); err != nil {
		return 0, 0, fmt.Errorf("gate: add gate: %w", err)
	}
	if err := ecs.Add(w, gate, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:   component.BodyStatic,
		Width:  spec.Gate.Width,
		Height: spec.Gate.Height,
	}); err != nil {
		return 0, 0, fmt.Errorf("gate: add physics body: %w", err)
	}

	chain = ecs.CreateEntity(w)
	if err := ecs.Add(w, chain, component.NameComponent.Kind(), &component.Name{Value: "chain"}); err != nil {
		return 0, 0, fmt.Errorf("chain: add name: %w", err)
	}
	if err := ecs.Add(w, chain, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Chain.Position.World(),
		Scale:    1,
	}); err != nil {
		return 0, 0, fmt.Errorf("chain: add transform: %w", err)
	}
	if err := ecs.Add(w, chain, component.ChainComponent.Kind(), &component.Chain{
		Gate: uint64(gate),
		Hint: spec.Chain.Hint,
	}); err != nil {
		return 0, 0, fmt.Errorf("chain: add chain: %w", err)
	}
	if err := ecs.Add(w, chain, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:   component.BodyStatic,
		Radius: spec.Chain.Radius,
		Sensor: true,
	}); err != nil {
		return 0, 0, fmt.Errorf("chain: add physics body: %w", err)
	}

	return gate, chain, nil
}
