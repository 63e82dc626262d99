package system

import (
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

// AnimationCatalogSystem applies catalog add, remove and reload requests to
// the registry.
type AnimationCatalogSystem struct {
	registry *animation.Registry
	log      *zap.Logger
}

func NewAnimationCatalogSystem(registry *animation.Registry, log *zap.Logger) *AnimationCatalogSystem {
	return &AnimationCatalogSystem{
		registry: registry,
		log:      logging.OrNop(log).Named("catalog"),
	}
}

func (s *AnimationCatalogSystem) Update(w *ecs.World) {
	if w == nil || s.registry == nil {
		return
	}

	for _, add := range ecs.Drain(w, component.AddCatalogEvent) {
		if add.Catalog == nil {
			continue
		}
		s.registry.Add(add.Catalog)
		s.log.Debug("catalog added",
			zap.String("scene", add.Catalog.Scene),
			zap.Stringer("archetype", add.Catalog.Archetype),
			zap.Uint64("owner", add.Catalog.Owner),
			zap.Int("clips", add.Catalog.Len()),
		)
	}

	for _, rm := range ecs.Drain(w, component.RemoveCatalogEvent) {
		n := s.registry.RemoveOwner(rm.Owner)
		if n == 0 {
			s.log.Warn("no catalog to remove", zap.Uint64("owner", rm.Owner))
			continue
		}
		s.log.Debug("catalogs removed", zap.Uint64("owner", rm.Owner), zap.Int("count", n))
	}

	for _, reload := range ecs.Drain(w, component.ReloadCatalogEvent) {
		if reload.Catalog == nil {
			continue
		}
		if s.registry.Replace(reload.Catalog) {
			s.log.Info("catalog reloaded", zap.String("scene", reload.Catalog.Scene), zap.Uint64("owner", reload.Catalog.Owner))
			continue
		}
		s.registry.Add(reload.Catalog)
		s.log.Info("catalog added on reload", zap.String("scene", reload.Catalog.Scene), zap.Uint64("owner", reload.Catalog.Owner))
	}
}
