package system

import (
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

// SceneLoaderSystem instantiates requested scenes once their catalog is
// registered. Each scene becomes a root entity parented to the requester
// with a rig child that carries the playback surface.
type SceneLoaderSystem struct {
	registry *animation.Registry
	log      *zap.Logger
	waiting  map[ecs.Entity]bool
}

func NewSceneLoaderSystem(registry *animation.Registry, log *zap.Logger) *SceneLoaderSystem {
	return &SceneLoaderSystem{
		registry: registry,
		log:      logging.OrNop(log).Named("scene"),
		waiting:  make(map[ecs.Entity]bool),
	}
}

func (s *SceneLoaderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.SceneSpawnRequestComponent.Kind(), func(e ecs.Entity, req *component.SceneSpawnRequest) {
		if _, ok := s.registry.Scene(req.Scene); !ok {
			if !s.waiting[e] {
				s.waiting[e] = true
				s.log.Debug("scene waiting for catalog", zap.Stringer("entity", e), zap.String("scene", req.Scene))
			}
			return
		}
		delete(s.waiting, e)

		root, err := SpawnScene(w, e, *req)
		if err != nil {
			s.log.Error("spawn scene", zap.Stringer("entity", e), zap.String("scene", req.Scene), zap.Error(err))
			return
		}
		ecs.Remove(w, e, component.SceneSpawnRequestComponent.Kind())
		s.log.Debug("scene loaded", zap.Stringer("entity", e), zap.Stringer("root", root), zap.String("scene", req.Scene))
	})

	for e := range s.waiting {
		if !ecs.Has(w, e, component.SceneSpawnRequestComponent.Kind()) {
			delete(s.waiting, e)
		}
	}
}

// SpawnScene builds the hierarchy of a loaded scene under owner and returns
// its root.
func SpawnScene(w *ecs.World, owner ecs.Entity, req component.SceneSpawnRequest) (ecs.Entity, error) {
	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.SceneInstanceComponent.Kind(), &component.SceneInstance{
		Scene:     req.Scene,
		Archetype: req.Archetype,
		Offset:    req.Offset,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, root, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(owner)}); err != nil {
		return 0, err
	}

	rig := ecs.CreateEntity(w)
	if err := ecs.Add(w, rig, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(root)}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, rig, component.AnimationPlayerComponent.Kind(), &component.AnimationPlayer{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, rig, component.AnimationPlayerAddedComponent.Kind(), &component.AnimationPlayerAdded{}); err != nil {
		return 0, err
	}
	return root, nil
}

// DespawnScenes destroys every scene loaded under owner, rigs included.
func DespawnScenes(w *ecs.World, owner ecs.Entity) int {
	removed := 0
	for _, root := range w.Query(component.SceneInstanceComponent.Kind(), component.ParentComponent.Kind()) {
		parent, _ := ecs.Get(w, root, component.ParentComponent.Kind())
		if ecs.Entity(parent.Entity) != owner {
			continue
		}
		for _, child := range w.Query(component.ParentComponent.Kind()) {
			p, _ := ecs.Get(w, child, component.ParentComponent.Kind())
			if ecs.Entity(p.Entity) == root {
				ecs.DestroyEntity(w, child)
			}
		}
		ecs.DestroyEntity(w, root)
		removed++
	}
	return removed
}
