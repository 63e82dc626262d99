package system

import (
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/ecs/entity"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

// GateSystem opens gates whose chain is pulled by a skeleton in the
// required form and shows the chain's hint to anyone else.
type GateSystem struct {
	log *zap.Logger
}

func NewGateSystem(log *zap.Logger) *GateSystem {
	return &GateSystem{log: logging.OrNop(log).Named("gate")}
}

func (s *GateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		for _, evt := range ecs.Read(w, component.CollisionEventKind) {
			other, ok := evt.Involves(uint64(player))
			if !ok {
				continue
			}
			s.pull(w, player, ecs.Entity(other), evt.Started)
		}
	}

	ecs.ForEach(w, component.GateComponent.Kind(), func(e ecs.Entity, gate *component.Gate) {
		if gate.State != component.GateOpening {
			return
		}
		gate.Depth += gate.Step
		if gate.Depth < gate.Limit {
			return
		}
		gate.Depth = gate.Limit
		gate.State = component.GateOpened
		ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
		s.log.Info("gate opened", zap.Stringer("gate", e))
	})
}

func (s *GateSystem) pull(w *ecs.World, player, chainEntity ecs.Entity, started bool) {
	chain, ok := ecs.Get(w, chainEntity, component.ChainComponent.Kind())
	if !ok {
		return
	}

	if !started {
		if chain.Message != 0 {
			ecs.DestroyEntity(w, ecs.Entity(chain.Message))
			chain.Message = 0
		}
		return
	}

	gate, ok := ecs.Get(w, ecs.Entity(chain.Gate), component.GateComponent.Kind())
	if !ok || gate.State != component.GateClosed {
		return
	}

	if form, ok := ecs.Get(w, player, component.SkellyFormComponent.Kind()); ok && form.Form >= gate.Requires {
		gate.State = component.GateOpening
		s.log.Info("gate opening", zap.Uint64("gate", chain.Gate), zap.Stringer("form", form.Form))
		return
	}

	if chain.Message != 0 && w.IsAlive(ecs.Entity(chain.Message)) {
		return
	}
	msg, err := entity.NewMessage(w, chain.Hint)
	if err != nil {
		s.log.Error("show chain hint", zap.Error(err))
		return
	}
	chain.Message = uint64(msg)
}
