package system

import (
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/ecs/entity"
	"github.com/milk9111/bonecollector/logging"
	"github.com/milk9111/bonecollector/prefabs"
	"go.uber.org/zap"
)

// BonePackSystem scatters a pack's parts around it the first time the
// player touches it.
type BonePackSystem struct {
	parts *prefabs.PartsSpec
	log   *zap.Logger
}

func NewBonePackSystem(parts *prefabs.PartsSpec, log *zap.Logger) *BonePackSystem {
	return &BonePackSystem{parts: parts, log: logging.OrNop(log).Named("pickup")}
}

func (s *BonePackSystem) Update(w *ecs.World) {
	if w == nil || s.parts == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
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
		packEntity := ecs.Entity(other)
		pack, ok := ecs.Get(w, packEntity, component.BonePackComponent.Kind())
		if !ok || pack.Consumed {
			continue
		}
		transform, ok := ecs.Get(w, packEntity, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		pack.Consumed = true
		offsets := s.parts.Pack.Offsets
		for i, kind := range pack.Parts {
			pos := transform.Position
			if len(offsets) > 0 {
				pos = pos.Add(offsets[i%len(offsets)].Vector())
			}
			if _, err := entity.NewBonePart(w, s.parts, kind, pos); err != nil {
				s.log.Error("spawn bone part", zap.Stringer("pack", packEntity), zap.Stringer("part", kind), zap.Error(err))
			}
		}
		s.log.Info("bone pack opened", zap.Stringer("pack", packEntity), zap.Int("parts", len(pack.Parts)))
	}
}
