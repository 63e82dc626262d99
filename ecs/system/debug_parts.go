package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/ecs/entity"
	"github.com/milk9111/bonecollector/logging"
	"github.com/milk9111/bonecollector/prefabs"
	"go.uber.org/zap"
)

// DebugPartsSystem grants bones and drops one of every part around the
// player on request.
type DebugPartsSystem struct {
	parts *prefabs.PartsSpec
	log   *zap.Logger
}

func NewDebugPartsSystem(parts *prefabs.PartsSpec, log *zap.Logger) *DebugPartsSystem {
	return &DebugPartsSystem{parts: parts, log: logging.OrNop(log).Named("debug")}
}

func (s *DebugPartsSystem) Update(w *ecs.World) {
	if w == nil || s.parts == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.InventoryComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, input *component.Input, inv *component.Inventory, t *component.Transform) {
		if !input.DebugParts {
			return
		}
		input.DebugParts = false

		inv.Add(animation.Bone, s.parts.Debug.Bones)
		for _, spawn := range s.parts.Debug.Spawn {
			kind, err := animation.ParseArchetype(spawn.Archetype)
			if err != nil {
				s.log.Warn("debug spawn", zap.Error(err))
				continue
			}
			pos := t.Position.Add(cp.Vector{X: spawn.X, Y: spawn.Y})
			if _, err := entity.NewBonePart(w, s.parts, kind, pos); err != nil {
				s.log.Warn("debug spawn", zap.Stringer("part", kind), zap.Error(err))
			}
		}
		s.log.Info("debug parts spawned", zap.Stringer("entity", e), zap.Int("bones", inv.Bone))
	})
}
