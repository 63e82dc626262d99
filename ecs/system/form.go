package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/logging"
	"github.com/milk9111/bonecollector/prefabs"
	"go.uber.org/zap"
)

type formRequirement struct {
	form  component.Form
	needs map[animation.Archetype]int
}

// FormProgressionSystem asks for a bigger body once the inventory holds
// enough parts. With cycling enabled the form key steps through all forms.
type FormProgressionSystem struct {
	requirements []formRequirement
	cycling      bool
	// granted is the biggest form each entity has earned so far, so a
	// manual cycle back down is not undone on the next tick.
	granted map[ecs.Entity]component.Form
	log     *zap.Logger
}

func NewFormProgressionSystem(spec *prefabs.SkellySpec, cycling bool, log *zap.Logger) *FormProgressionSystem {
	s := &FormProgressionSystem{
		cycling: cycling,
		granted: make(map[ecs.Entity]component.Form),
		log:     logging.OrNop(log).Named("form"),
	}
	if spec == nil {
		return s
	}
	for _, fs := range spec.Forms {
		form, err := component.ParseForm(fs.Form)
		if err != nil {
			s.log.Warn("skip form", zap.Error(err))
			continue
		}
		req := formRequirement{form: form, needs: make(map[animation.Archetype]int, len(fs.Requires))}
		for name, n := range fs.Requires {
			kind, err := animation.ParseArchetype(name)
			if err != nil {
				s.log.Warn("skip form requirement", zap.Stringer("form", form), zap.Error(err))
				continue
			}
			req.needs[kind] = n
		}
		s.requirements = append(s.requirements, req)
	}
	return s
}

func (s *FormProgressionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for e := range s.granted {
		if !w.IsAlive(e) {
			delete(s.granted, e)
		}
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.SkellyFormComponent.Kind(), component.InventoryComponent.Kind(), func(e ecs.Entity, input *component.Input, current *component.SkellyForm, inv *component.Inventory) {
		if ecs.Has(w, e, component.FormChangeRequestComponent.Kind()) {
			return
		}

		granted, seen := s.granted[e]
		if !seen || current.Form > granted {
			granted = current.Form
			s.granted[e] = granted
		}

		target := current.Form
		if input.CycleForm {
			input.CycleForm = false
			if s.cycling {
				target = current.Form.Cycle()
			}
		}
		if target == current.Form {
			if earned := s.Earned(granted, inv); earned != granted {
				s.granted[e] = earned
				target = earned
			}
		}
		if target == current.Form {
			return
		}

		s.log.Info("form change requested", zap.Stringer("entity", e), zap.Stringer("from", current.Form), zap.Stringer("to", target))
		if err := ecs.Add(w, e, component.FormChangeRequestComponent.Kind(), &component.FormChangeRequest{Form: target}); err != nil {
			s.log.Error("add form change request", zap.Stringer("entity", e), zap.Error(err))
		}
	})
}

// Earned returns the biggest form above current whose requirements inv
// meets, or current if none.
func (s *FormProgressionSystem) Earned(current component.Form, inv *component.Inventory) component.Form {
	best := current
	for _, req := range s.requirements {
		if req.form <= best || len(req.needs) == 0 {
			continue
		}
		met := true
		for kind, n := range req.needs {
			if inv.Count(kind) < n {
				met = false
				break
			}
		}
		if met {
			best = req.form
		}
	}
	return best
}

// FormChangeSystem swaps a skeleton's body: the matching catalog becomes
// the live one, the old scene is torn down, the new scene is requested and
// playback restarts from the initial clip.
type FormChangeSystem struct {
	registry *animation.Registry
	spec     *prefabs.SkellySpec
	log      *zap.Logger
}

func NewFormChangeSystem(registry *animation.Registry, spec *prefabs.SkellySpec, log *zap.Logger) *FormChangeSystem {
	return &FormChangeSystem{
		registry: registry,
		spec:     spec,
		log:      logging.OrNop(log).Named("form"),
	}
}

func (s *FormChangeSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}

	ecs.ForEach3(w, component.FormChangeRequestComponent.Kind(), component.SkellyFormComponent.Kind(), component.CreatureComponent.Kind(), func(e ecs.Entity, req *component.FormChangeRequest, current *component.SkellyForm, creature *component.Creature) {
		target := req.Form
		ecs.Remove(w, e, component.FormChangeRequestComponent.Kind())
		if target == current.Form {
			return
		}

		formSpec, ok := s.spec.Form(target.String())
		if !ok {
			s.log.Warn("no scene for form", zap.Stringer("entity", e), zap.Stringer("form", target))
			return
		}
		archetype := target.Archetype()
		if s.registry.Activate(uint64(e), archetype) == 0 {
			s.log.Warn("no catalog for form", zap.Stringer("entity", e), zap.Stringer("form", target))
			return
		}

		DespawnScenes(w, e)
		ecs.Remove(w, e, component.AnimationLinkComponent.Kind())
		if err := ecs.Add(w, e, component.SceneSpawnRequestComponent.Kind(), &component.SceneSpawnRequest{
			Scene:     formSpec.Scene,
			Archetype: archetype,
			Offset:    formSpec.Offset.Vector(),
		}); err != nil {
			s.log.Error("add scene request", zap.Stringer("entity", e), zap.Error(err))
			return
		}

		from := current.Form
		current.Form = target
		creature.Archetype = archetype
		// Movement stays locked until the new form's initial clip is dispatched.
		creature.Current = animation.ClipNone
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			body.Velocity = cp.Vector{}
		}
		if ctrl, ok := ecs.Get(w, e, component.PlayerControllerComponent.Kind()); ok {
			ctrl.Moving = false
		}
		if state, ok := ecs.Get(w, e, component.PlaybackStateComponent.Kind()); ok {
			state.Override.Request()
		}
		s.log.Info("form changed", zap.Stringer("entity", e), zap.Stringer("from", from), zap.Stringer("to", target))
	})
}
