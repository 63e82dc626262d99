package system

import (
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

// PickupCollectSystem moves touched bone parts into the player's inventory.
type PickupCollectSystem struct {
	log *zap.Logger
}

func NewPickupCollectSystem(log *zap.Logger) *PickupCollectSystem {
	return &PickupCollectSystem{log: logging.OrNop(log).Named("pickup")}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range ecs.Read(w, component.CollisionEventKind) {
		if !evt.Started {
			continue
		}
		other, ok := evt.Involves(uint64(player))
		if !ok {
			continue
		}
		partEntity := ecs.Entity(other)
		part, ok := ecs.Get(w, partEntity, component.BonePartComponent.Kind())
		if !ok {
			continue
		}

		if inv.Add(part.Item, 1) {
			s.log.Info("part collected",
				zap.Stringer("part", part.Item),
				zap.Int("held", inv.Count(part.Item)),
			)
		} else {
			s.log.Debug("part not collectable", zap.Stringer("part", part.Item))
		}
		DespawnScenes(w, partEntity)
		ecs.DestroyEntity(w, partEntity)
	}
}
