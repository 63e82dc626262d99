package system

import (
	"time"

	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
)

// AnimationPlayerSystem advances the clip time of every playback surface.
type AnimationPlayerSystem struct {
	step time.Duration
}

func NewAnimationPlayerSystem(step time.Duration) *AnimationPlayerSystem {
	return &AnimationPlayerSystem{step: step}
}

func (s *AnimationPlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AnimationPlayerComponent.Kind(), func(_ ecs.Entity, p *component.AnimationPlayer) {
		if !p.Playing || p.Length <= 0 {
			return
		}
		p.Time += s.step
		if p.Time < p.Length {
			return
		}
		if p.Loop {
			p.Time %= p.Length
			return
		}
		p.Time = p.Length
		p.Playing = false
	})
}
