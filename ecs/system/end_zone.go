package system

import (
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/ecs/entity"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

// EndZoneSystem shows the closing text once the player reaches the end.
type EndZoneSystem struct {
	log *zap.Logger
}

func NewEndZoneSystem(log *zap.Logger) *EndZoneSystem {
	return &EndZoneSystem{log: logging.OrNop(log).Named("level")}
}

func (s *EndZoneSystem) Update(w *ecs.World) {
	if w == nil {
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
		zone, ok := ecs.Get(w, ecs.Entity(other), component.EndZoneComponent.Kind())
		if !ok || zone.Reached {
			continue
		}
		zone.Reached = true
		if _, err := entity.NewMessage(w, zone.Text); err != nil {
			s.log.Error("show end text", zap.Error(err))
			continue
		}
		s.log.Info("level finished")
	}
}
