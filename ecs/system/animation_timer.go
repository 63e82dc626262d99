package system

import (
	"time"

	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

// AnimationTimerSystem counts down every creature's clip and raises the
// follow-up request once it ends or its playback was overridden.
type AnimationTimerSystem struct {
	step time.Duration
	log  *zap.Logger
}

func NewAnimationTimerSystem(step time.Duration, log *zap.Logger) *AnimationTimerSystem {
	return &AnimationTimerSystem{
		step: step,
		log:  logging.OrNop(log).Named("animation"),
	}
}

func (s *AnimationTimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlaybackStateComponent.Kind(), component.CreatureComponent.Kind(), func(e ecs.Entity, state *component.PlaybackState, creature *component.Creature) {
		state.Tick(s.step)

		expired, overridden := state.Expired()
		if !expired {
			return
		}
		finished := state.Clip
		state.Restart()

		if overridden {
			s.log.Debug("playback overridden", zap.Stringer("creature", e), zap.Stringer("archetype", creature.Archetype))
			ecs.Send(w, component.ChangeAnimationEvent, component.ChangeAnimation{
				Target: uint64(e),
				Clip:   creature.Initial.Clip,
				Repeat: creature.Initial.Repeat,
			})
			return
		}

		next, ok := animation.Next(creature.Archetype, finished)
		if !ok {
			return
		}
		ecs.Send(w, component.ChangeAnimationEvent, component.ChangeAnimation{
			Target: uint64(e),
			Clip:   next.Clip,
			Repeat: next.Repeat,
		})
	})
}
