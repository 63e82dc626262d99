package entity

import (
	"fmt"

	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
)

// NewFloor lays out the floor tiles produced by the level script and
// returns how many were spawned.
func NewFloor(w *ecs.World, spec *prefabs.LevelSpec) (int, error) {
	tiles, err := spec.FloorTiles()
	if err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}
	for _, t := range tiles {
		tile := ecs.CreateEntity(w)
		if err := ecs.Add(w, tile, component.FloorTileComponent.Kind(), &component.FloorTile{I: t.I, J: t.J, Room: t.Room}); err != nil {
			return 0, fmt.Errorf("level: add floor tile: %w", err)
		}
		pos := prefabs.GridSpec{I: float64(t.I), J: float64(t.J)}.World()
		if err := ecs.Add(w, tile, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
			return 0, fmt.Errorf("level: add transform: %w", err)
		}
	}
	return len(tiles), nil
}
