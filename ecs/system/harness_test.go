package system

import (
	"testing"
	"time"

	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testStep = time.Second / 60

type harness struct {
	w        *ecs.World
	registry *animation.Registry
	logs     *observer.ObservedLogs
	log      *zap.Logger
	skelly   *prefabs.SkellySpec
	parts    *prefabs.PartsSpec
	sched    *ecs.Scheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	skelly, err := prefabs.LoadSkellySpec()
	require.NoError(t, err)
	parts, err := prefabs.LoadPartsSpec()
	require.NoError(t, err)

	h := &harness{
		w:        ecs.NewWorld(),
		registry: animation.NewRegistry(),
		logs:     logs,
		log:      log,
		skelly:   skelly,
		parts:    parts,
	}

	s := ecs.NewScheduler()
	s.Add(ecs.PhaseEarly, NewSceneLoaderSystem(h.registry, log))
	s.Add(ecs.PhaseEarly, NewAnimationLinkSystem(log))
	s.Add(ecs.PhaseMain, NewPlayerControllerSystem())
	s.Add(ecs.PhaseMain, NewAnimationDispatchSystem(h.registry, log))
	s.Add(ecs.PhaseMain, NewBonePackSystem(parts, log))
	s.Add(ecs.PhaseMain, NewPickupCollectSystem(log))
	s.Add(ecs.PhaseMain, NewGateSystem(log))
	s.Add(ecs.PhaseMain, NewEndZoneSystem(log))
	s.Add(ecs.PhaseMain, NewPhysicsSystem(testStep, log))
	s.Add(ecs.PhaseMain, NewFormProgressionSystem(skelly, true, log))
	s.Add(ecs.PhaseMain, NewFormChangeSystem(h.registry, skelly, log))
	s.Add(ecs.PhaseLate, NewAnimationCatalogSystem(h.registry, log))
	s.Add(ecs.PhaseLate, NewAnimationPlayerSystem(testStep))
	s.Add(ecs.PhaseLate, NewAnimationTimerSystem(testStep, log))
	s.Add(ecs.PhaseLate, NewCameraSystem())
	h.sched = s

	return h
}

func (h *harness) tick(n int) {
	for i := 0; i < n; i++ {
		h.sched.Update(h.w)
	}
}

func (h *harness) warnings(msg string) int {
	return h.logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage(msg).Len()
}

// linkedPlayer returns the playback surface linked to e.
func linkedPlayer(t *testing.T, w *ecs.World, e ecs.Entity) *component.AnimationPlayer {
	t.Helper()
	link, ok := ecs.Get(w, e, component.AnimationLinkComponent.Kind())
	require.True(t, ok, "creature has no animation link")
	player, ok := ecs.Get(w, ecs.Entity(link.Player), component.AnimationPlayerComponent.Kind())
	require.True(t, ok, "linked entity has no animation player")
	return player
}

// newLinkedCreature builds a creature with a rig child already linked, the
// way the scene loader and link system leave it.
func newLinkedCreature(t *testing.T, w *ecs.World, archetype animation.Archetype, current animation.ClipID) ecs.Entity {
	t.Helper()
	creature := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, creature, component.CreatureComponent.Kind(), &component.Creature{
		Archetype: archetype,
		Current:   current,
		Initial:   animation.Request{Clip: animation.Spawn},
		Started:   true,
	}))
	rig := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, rig, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(creature)}))
	require.NoError(t, ecs.Add(w, rig, component.AnimationPlayerComponent.Kind(), &component.AnimationPlayer{}))
	require.NoError(t, ecs.Add(w, creature, component.AnimationLinkComponent.Kind(), &component.AnimationLink{Player: uint64(rig)}))
	state := &component.PlaybackState{Stopwatch: animation.NewStopwatch(current)}
	require.NoError(t, ecs.Add(w, creature, component.PlaybackStateComponent.Kind(), state))
	return creature
}

func testCatalog(t *testing.T, scene string, archetype animation.Archetype, owner uint64) *animation.Catalog {
	t.Helper()
	c := animation.NewCatalog(scene, archetype, owner)
	for _, id := range animation.Clips() {
		require.NoError(t, c.Register(id, id.DefaultDuration(), prefabs.ClipRef(scene, id)))
	}
	return c
}
