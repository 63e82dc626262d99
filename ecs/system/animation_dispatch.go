package system

import (
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

// AnimationDispatchSystem plays requested clips on creatures' playback
// surfaces and restarts their countdown.
type AnimationDispatchSystem struct {
	registry *animation.Registry
	log      *zap.Logger
}

func NewAnimationDispatchSystem(registry *animation.Registry, log *zap.Logger) *AnimationDispatchSystem {
	return &AnimationDispatchSystem{
		registry: registry,
		log:      logging.OrNop(log).Named("animation"),
	}
}

func (s *AnimationDispatchSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, req := range ecs.Drain(w, component.ChangeAnimationEvent) {
		s.Dispatch(w, req)
	}
}

// Dispatch applies one request. Dispatching the same request again leaves
// the creature in the same state.
func (s *AnimationDispatchSystem) Dispatch(w *ecs.World, req component.ChangeAnimation) bool {
	target := ecs.Entity(req.Target)

	creature, ok := ecs.Get(w, target, component.CreatureComponent.Kind())
	if !ok {
		s.log.Warn("animation request for unlinked creature", zap.Stringer("creature", target), zap.Stringer("clip", req.Clip))
		return false
	}
	link, ok := ecs.Get(w, target, component.AnimationLinkComponent.Kind())
	if !ok {
		s.log.Warn("animation request for unlinked creature", zap.Stringer("creature", target), zap.Stringer("clip", req.Clip))
		return false
	}
	player, ok := ecs.Get(w, ecs.Entity(link.Player), component.AnimationPlayerComponent.Kind())
	if !ok {
		s.log.Warn("animation request for unlinked creature",
			zap.Stringer("creature", target),
			zap.Uint64("player", link.Player),
			zap.Stringer("clip", req.Clip),
		)
		return false
	}

	catalog, ok := s.registry.Active(req.Target, creature.Archetype)
	if !ok {
		s.log.Warn("no activated catalog for archetype",
			zap.Stringer("creature", target),
			zap.Stringer("archetype", creature.Archetype),
			zap.Stringer("clip", req.Clip),
		)
		return false
	}

	entry := catalog.Resolve(req.Clip)
	player.Play(entry.Clip, req.Repeat)
	player.Length = entry.Duration
	creature.Current = req.Clip

	state, ok := ecs.Get(w, target, component.PlaybackStateComponent.Kind())
	if !ok {
		state = &component.PlaybackState{}
		if err := ecs.Add(w, target, component.PlaybackStateComponent.Kind(), state); err != nil {
			s.log.Error("add playback state", zap.Stringer("creature", target), zap.Error(err))
			return false
		}
	}
	state.Reset(req.Clip, entry.Duration)

	s.log.Debug("play",
		zap.Stringer("creature", target),
		zap.Stringer("archetype", creature.Archetype),
		zap.Stringer("clip", req.Clip),
		zap.String("asset", string(entry.Clip)),
		zap.Bool("repeat", req.Repeat),
		zap.Duration("duration", entry.Duration),
	)
	return true
}
