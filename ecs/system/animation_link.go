package system

import (
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

// maxHierarchyDepth bounds the ancestor walk so a malformed Parent cycle
// cannot hang the tick.
const maxHierarchyDepth = 64

// AnimationLinkSystem binds freshly added playback surfaces to the creature
// at the top of their hierarchy and starts the creature's first clip.
type AnimationLinkSystem struct {
	log *zap.Logger
}

func NewAnimationLinkSystem(log *zap.Logger) *AnimationLinkSystem {
	return &AnimationLinkSystem{log: logging.OrNop(log).Named("animation")}
}

func (s *AnimationLinkSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, player := range w.Query(component.AnimationPlayerAddedComponent.Kind()) {
		ecs.Remove(w, player, component.AnimationPlayerAddedComponent.Kind())
		s.link(w, player)
	}
}

func (s *AnimationLinkSystem) link(w *ecs.World, player ecs.Entity) {
	top := TopAncestor(w, player)
	creature, ok := ecs.Get(w, top, component.CreatureComponent.Kind())
	if !ok {
		s.log.Warn("playback surface outside any creature", zap.Stringer("player", player), zap.Stringer("top", top))
		return
	}

	if link, ok := ecs.Get(w, top, component.AnimationLinkComponent.Kind()); ok && ecs.Entity(link.Player) != player {
		s.log.Warn("creature already linked to a playback surface",
			zap.Stringer("creature", top),
			zap.Uint64("linked", link.Player),
			zap.Stringer("ignored", player),
		)
		return
	}

	if err := ecs.Add(w, top, component.AnimationLinkComponent.Kind(), &component.AnimationLink{Player: uint64(player)}); err != nil {
		s.log.Error("add animation link", zap.Stringer("creature", top), zap.Error(err))
		return
	}
	if !ecs.Has(w, top, component.PlaybackStateComponent.Kind()) {
		state := &component.PlaybackState{Stopwatch: animation.NewStopwatch(creature.Initial.Clip)}
		if err := ecs.Add(w, top, component.PlaybackStateComponent.Kind(), state); err != nil {
			s.log.Error("add playback state", zap.Stringer("creature", top), zap.Error(err))
			return
		}
	}

	s.log.Debug("linked playback surface", zap.Stringer("creature", top), zap.Stringer("player", player))

	if creature.Started {
		return
	}
	creature.Started = true
	ecs.Send(w, component.ChangeAnimationEvent, component.ChangeAnimation{
		Target: uint64(top),
		Clip:   creature.Initial.Clip,
		Repeat: creature.Initial.Repeat,
	})
}

// TopAncestor follows Parent links from e to the root of its hierarchy.
func TopAncestor(w *ecs.World, e ecs.Entity) ecs.Entity {
	current := e
	seen := make(map[ecs.Entity]struct{}, 4)
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		seen[current] = struct{}{}
		parent, ok := ecs.Get(w, current, component.ParentComponent.Kind())
		if !ok {
			return current
		}
		next := ecs.Entity(parent.Entity)
		if !w.IsAlive(next) {
			return current
		}
		if _, loop := seen[next]; loop {
			return current
		}
		current = next
	}
	return current
}
