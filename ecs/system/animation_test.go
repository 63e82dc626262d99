package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/ecs/entity"
	"github.com/milk9111/bonecollector/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkellyPlaysSpawnOnceLinked(t *testing.T) {
	h := newHarness(t)
	skelly, err := entity.NewSkelly(h.w, h.skelly, component.FormOnlyHead)
	require.NoError(t, err)

	// Catalogs register at the end of the first tick, so the scene cannot
	// load before the second.
	h.tick(1)
	assert.False(t, ecs.Has(h.w, skelly, component.AnimationLinkComponent.Kind()))
	assert.True(t, ecs.Has(h.w, skelly, component.SceneSpawnRequestComponent.Kind()))

	h.tick(1)
	creature, ok := ecs.Get(h.w, skelly, component.CreatureComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, animation.Spawn, creature.Current)
	assert.True(t, creature.Started)

	player := linkedPlayer(t, h.w, skelly)
	assert.Equal(t, prefabs.ClipRef("models/skeleton/head.glb", animation.Spawn), player.Clip)
	assert.False(t, player.Loop)
	assert.True(t, player.Playing)
	assert.False(t, ecs.Has(h.w, skelly, component.SceneSpawnRequestComponent.Kind()))
	assert.Zero(t, h.warnings("animation request for unlinked creature"))
}

func TestSpawnChainsIntoLookingAroundThenIdle(t *testing.T) {
	h := newHarness(t)
	skelly, err := entity.NewSkelly(h.w, h.skelly, component.FormOnlyHead)
	require.NoError(t, err)
	h.tick(2)

	creature, _ := ecs.Get(h.w, skelly, component.CreatureComponent.Kind())
	for i := 0; i < 600 && creature.Current != animation.LookingAround; i++ {
		h.tick(1)
	}
	require.Equal(t, animation.LookingAround, creature.Current)
	assert.False(t, linkedPlayer(t, h.w, skelly).Loop)

	for i := 0; i < 600 && creature.Current != animation.Idle; i++ {
		h.tick(1)
	}
	require.Equal(t, animation.Idle, creature.Current)
	assert.True(t, linkedPlayer(t, h.w, skelly).Loop)
}

func TestIdleCountdownRaisesNothing(t *testing.T) {
	w := ecs.NewWorld()
	creature := newLinkedCreature(t, w, animation.SkellyFullBody, animation.Idle)
	state, _ := ecs.Get(w, creature, component.PlaybackStateComponent.Kind())
	state.Reset(animation.Idle, animation.Seconds(1.58))

	timer := NewAnimationTimerSystem(testStep, nil)
	for i := 0; i < 200; i++ {
		timer.Update(w)
	}

	assert.Zero(t, ecs.Pending(w, component.ChangeAnimationEvent))
	c, _ := ecs.Get(w, creature, component.CreatureComponent.Kind())
	assert.Equal(t, animation.Idle, c.Current)
}

func TestLookingAroundCountdownRaisesIdleOnce(t *testing.T) {
	w := ecs.NewWorld()
	creature := newLinkedCreature(t, w, animation.SkellyOnlyHead, animation.LookingAround)
	state, _ := ecs.Get(w, creature, component.PlaybackStateComponent.Kind())
	state.Reset(animation.LookingAround, animation.Seconds(3.18))

	timer := NewAnimationTimerSystem(testStep, nil)
	// 3.18s at 60 ticks per second ends on tick 191.
	for i := 0; i < 190; i++ {
		timer.Update(w)
	}
	require.Zero(t, ecs.Pending(w, component.ChangeAnimationEvent))

	timer.Update(w)
	events := ecs.Drain(w, component.ChangeAnimationEvent)
	require.Len(t, events, 1)
	assert.Equal(t, component.ChangeAnimation{Target: uint64(creature), Clip: animation.Idle, Repeat: true}, events[0])
}

func TestFormUpgradeOverridesCountdown(t *testing.T) {
	h := newHarness(t)
	skelly, err := entity.NewSkelly(h.w, h.skelly, component.FormOnlyHead)
	require.NoError(t, err)
	h.tick(2)

	state, _ := ecs.Get(h.w, skelly, component.PlaybackStateComponent.Kind())
	require.False(t, state.Finished())
	inv, _ := ecs.Get(h.w, skelly, component.InventoryComponent.Kind())
	inv.Add(animation.Bone, 4)

	h.tick(1)

	creature, _ := ecs.Get(h.w, skelly, component.CreatureComponent.Kind())
	form, _ := ecs.Get(h.w, skelly, component.SkellyFormComponent.Kind())
	assert.Equal(t, animation.SkellyHalfBody, creature.Archetype)
	assert.Equal(t, component.FormHalfBody, form.Form)
	assert.Equal(t, animation.ClipNone, creature.Current)
	assert.Zero(t, state.Elapsed)
	assert.False(t, state.Override.Requested())

	pending := ecs.Read(h.w, component.ChangeAnimationEvent)
	require.Len(t, pending, 1)
	assert.Equal(t, component.ChangeAnimation{Target: uint64(skelly), Clip: animation.Spawn}, pending[0])

	_, ok := h.registry.Active(uint64(skelly), animation.SkellyOnlyHead)
	assert.False(t, ok)
	_, ok = h.registry.Active(uint64(skelly), animation.SkellyHalfBody)
	assert.True(t, ok)

	h.tick(1)
	assert.Equal(t, animation.Spawn, creature.Current)
	player := linkedPlayer(t, h.w, skelly)
	assert.Equal(t, prefabs.ClipRef("models/skeleton/half_body.glb", animation.Spawn), player.Clip)
	assert.Len(t, h.w.Query(component.SceneInstanceComponent.Kind()), 1)
	assert.Zero(t, h.warnings("animation request for unlinked creature"))
	assert.Zero(t, h.warnings("creature already linked to a playback surface"))
}

func TestDispatchIsIdempotent(t *testing.T) {
	w := ecs.NewWorld()
	registry := animation.NewRegistry()
	creature := newLinkedCreature(t, w, animation.SkellyFullBody, animation.Idle)
	registry.Add(testCatalog(t, "full.glb", animation.SkellyFullBody, uint64(creature)))

	dispatch := NewAnimationDispatchSystem(registry, nil)
	req := component.ChangeAnimation{Target: uint64(creature), Clip: animation.Walk, Repeat: true}

	require.True(t, dispatch.Dispatch(w, req))
	player := *linkedPlayer(t, w, creature)
	state, _ := ecs.Get(w, creature, component.PlaybackStateComponent.Kind())
	first := state.Stopwatch

	require.True(t, dispatch.Dispatch(w, req))
	assert.Equal(t, player, *linkedPlayer(t, w, creature))
	assert.Equal(t, first, state.Stopwatch)
	assert.Equal(t, animation.Walk.DefaultDuration(), state.Duration)
}

func TestDispatchFallsBackToFirstClip(t *testing.T) {
	w := ecs.NewWorld()
	registry := animation.NewRegistry()
	creature := newLinkedCreature(t, w, animation.Bone, animation.ClipNone)
	c := animation.NewCatalog("bone.glb", animation.Bone, 0)
	require.NoError(t, c.Register(animation.FirstClip, animation.Seconds(1.58), prefabs.ClipRef("bone.glb", animation.FirstClip)))
	registry.Add(c)

	dispatch := NewAnimationDispatchSystem(registry, nil)
	require.True(t, dispatch.Dispatch(w, component.ChangeAnimation{Target: uint64(creature), Clip: animation.Run, Repeat: true}))

	cr, _ := ecs.Get(w, creature, component.CreatureComponent.Kind())
	assert.Equal(t, animation.Run, cr.Current)
	assert.Equal(t, prefabs.ClipRef("bone.glb", animation.FirstClip), linkedPlayer(t, w, creature).Clip)
}

func TestDispatchPanicsOnMissingFullBodyClip(t *testing.T) {
	w := ecs.NewWorld()
	registry := animation.NewRegistry()
	creature := newLinkedCreature(t, w, animation.SkellyFullBody, animation.Idle)
	c := animation.NewCatalog("full.glb", animation.SkellyFullBody, uint64(creature))
	require.NoError(t, c.Register(animation.Idle, animation.Seconds(1.58), "full.glb#Animation1"))
	registry.Add(c)

	dispatch := NewAnimationDispatchSystem(registry, nil)
	assert.Panics(t, func() {
		dispatch.Dispatch(w, component.ChangeAnimation{Target: uint64(creature), Clip: animation.Hanged})
	})
}

func TestDispatchWarnings(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, w *ecs.World, registry *animation.Registry) ecs.Entity
		warn  string
	}{
		{
			name: "dead target",
			setup: func(t *testing.T, w *ecs.World, _ *animation.Registry) ecs.Entity {
				e := ecs.CreateEntity(w)
				ecs.DestroyEntity(w, e)
				return e
			},
			warn: "animation request for unlinked creature",
		},
		{
			name: "no link",
			setup: func(t *testing.T, w *ecs.World, _ *animation.Registry) ecs.Entity {
				e := ecs.CreateEntity(w)
				require.NoError(t, ecs.Add(w, e, component.CreatureComponent.Kind(), &component.Creature{Archetype: animation.SkellyOnlyHead}))
				return e
			},
			warn: "animation request for unlinked creature",
		},
		{
			name: "surface destroyed",
			setup: func(t *testing.T, w *ecs.World, _ *animation.Registry) ecs.Entity {
				e := newLinkedCreature(t, w, animation.SkellyOnlyHead, animation.Idle)
				link, _ := ecs.Get(w, e, component.AnimationLinkComponent.Kind())
				ecs.DestroyEntity(w, ecs.Entity(link.Player))
				return e
			},
			warn: "animation request for unlinked creature",
		},
		{
			name: "no activated catalog",
			setup: func(t *testing.T, w *ecs.World, registry *animation.Registry) ecs.Entity {
				e := newLinkedCreature(t, w, animation.SkellyOnlyHead, animation.Idle)
				c := testCatalog(t, "head.glb", animation.SkellyOnlyHead, uint64(e))
				c.Activated = false
				registry.Add(c)
				return e
			},
			warn: "no activated catalog for archetype",
		},
		{
			name: "catalog of another owner",
			setup: func(t *testing.T, w *ecs.World, registry *animation.Registry) ecs.Entity {
				e := newLinkedCreature(t, w, animation.SkellyOnlyHead, animation.Idle)
				registry.Add(testCatalog(t, "head.glb", animation.SkellyOnlyHead, uint64(e)+1))
				return e
			},
			warn: "no activated catalog for archetype",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			target := tt.setup(t, h.w, h.registry)
			dispatch := NewAnimationDispatchSystem(h.registry, h.log)

			ecs.Send(h.w, component.ChangeAnimationEvent, component.ChangeAnimation{Target: uint64(target), Clip: animation.Walk})
			dispatch.Update(h.w)

			assert.Equal(t, 1, h.warnings(tt.warn))
			assert.Zero(t, ecs.Pending(h.w, component.ChangeAnimationEvent))
		})
	}
}

func TestLinkConflictKeepsFirstSurface(t *testing.T) {
	h := newHarness(t)
	creature := newLinkedCreature(t, h.w, animation.SkellyOnlyHead, animation.Idle)
	link, _ := ecs.Get(h.w, creature, component.AnimationLinkComponent.Kind())
	first := link.Player

	second := ecs.CreateEntity(h.w)
	require.NoError(t, ecs.Add(h.w, second, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(creature)}))
	require.NoError(t, ecs.Add(h.w, second, component.AnimationPlayerComponent.Kind(), &component.AnimationPlayer{}))
	require.NoError(t, ecs.Add(h.w, second, component.AnimationPlayerAddedComponent.Kind(), &component.AnimationPlayerAdded{}))

	NewAnimationLinkSystem(h.log).Update(h.w)

	assert.Equal(t, 1, h.warnings("creature already linked to a playback surface"))
	link, _ = ecs.Get(h.w, creature, component.AnimationLinkComponent.Kind())
	assert.Equal(t, first, link.Player)
	assert.False(t, ecs.Has(h.w, second, component.AnimationPlayerAddedComponent.Kind()))
	assert.Zero(t, ecs.Pending(h.w, component.ChangeAnimationEvent))
}

func TestLinkWithoutCreatureWarns(t *testing.T) {
	h := newHarness(t)
	orphan := ecs.CreateEntity(h.w)
	require.NoError(t, ecs.Add(h.w, orphan, component.AnimationPlayerComponent.Kind(), &component.AnimationPlayer{}))
	require.NoError(t, ecs.Add(h.w, orphan, component.AnimationPlayerAddedComponent.Kind(), &component.AnimationPlayerAdded{}))

	NewAnimationLinkSystem(h.log).Update(h.w)

	assert.Equal(t, 1, h.warnings("playback surface outside any creature"))
}

func TestLinkRaisesInitialRequestOnce(t *testing.T) {
	w := ecs.NewWorld()
	creature := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, creature, component.CreatureComponent.Kind(), &component.Creature{
		Archetype: animation.Arm,
		Initial:   animation.Request{Clip: animation.FirstClip},
	}))
	root, err := SpawnScene(w, creature, component.SceneSpawnRequest{Scene: "arm.glb", Archetype: animation.Arm})
	require.NoError(t, err)
	require.True(t, root.Valid())

	link := NewAnimationLinkSystem(nil)
	link.Update(w)

	events := ecs.Drain(w, component.ChangeAnimationEvent)
	require.Len(t, events, 1)
	assert.Equal(t, component.ChangeAnimation{Target: uint64(creature), Clip: animation.FirstClip}, events[0])
	assert.True(t, ecs.Has(w, creature, component.PlaybackStateComponent.Kind()))

	// A replacement surface links silently.
	ecs.Remove(w, creature, component.AnimationLinkComponent.Kind())
	DespawnScenes(w, creature)
	_, err = SpawnScene(w, creature, component.SceneSpawnRequest{Scene: "arm.glb", Archetype: animation.Arm})
	require.NoError(t, err)
	link.Update(w)

	assert.True(t, ecs.Has(w, creature, component.AnimationLinkComponent.Kind()))
	assert.Zero(t, ecs.Pending(w, component.ChangeAnimationEvent))
}

func TestTopAncestorStopsOnCycle(t *testing.T) {
	w := ecs.NewWorld()
	a := ecs.CreateEntity(w)
	b := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, a, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(b)}))
	require.NoError(t, ecs.Add(w, b, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(a)}))

	top := TopAncestor(w, a)
	assert.Contains(t, []ecs.Entity{a, b}, top)
}

func TestPropLoopsFirstClip(t *testing.T) {
	w := ecs.NewWorld()
	part := newLinkedCreature(t, w, animation.Bone, animation.FirstClip)
	state, _ := ecs.Get(w, part, component.PlaybackStateComponent.Kind())
	state.Reset(animation.FirstClip, animation.Seconds(1.58))

	timer := NewAnimationTimerSystem(testStep, nil)
	for i := 0; i < 95; i++ {
		timer.Update(w)
	}

	events := ecs.Drain(w, component.ChangeAnimationEvent)
	require.Len(t, events, 1)
	assert.Equal(t, animation.FirstClip, events[0].Clip)
	assert.True(t, events[0].Repeat)
}

func TestAnimationPlayerAdvance(t *testing.T) {
	tests := []struct {
		name    string
		loop    bool
		ticks   int
		playing bool
	}{
		{name: "mid clip", ticks: 30, playing: true},
		{name: "clamps at end", ticks: 120, playing: false},
		{name: "wraps when looping", loop: true, ticks: 120, playing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			p := &component.AnimationPlayer{}
			p.Play("clip", tt.loop)
			p.Length = animation.Seconds(1)
			require.NoError(t, ecs.Add(w, e, component.AnimationPlayerComponent.Kind(), p))

			sys := NewAnimationPlayerSystem(testStep)
			for i := 0; i < tt.ticks; i++ {
				sys.Update(w)
			}

			assert.Equal(t, tt.playing, p.Playing)
			assert.LessOrEqual(t, p.Time, p.Length)
		})
	}
}

func TestCatalogLifecycle(t *testing.T) {
	h := newHarness(t)
	const owner = 7

	first := testCatalog(t, "skelly/only_head.glb", animation.SkellyOnlyHead, owner)
	first.Activated = false
	ecs.Send(h.w, component.AddCatalogEvent, component.AddCatalog{Catalog: first})
	h.tick(1)
	require.Equal(t, 1, h.registry.Len())

	// A reload keeps the activated flag of the catalog it replaces.
	reloaded := testCatalog(t, "skelly/only_head.glb", animation.SkellyOnlyHead, owner)
	ecs.Send(h.w, component.ReloadCatalogEvent, component.ReloadCatalog{Catalog: reloaded})
	h.tick(1)
	got, ok := h.registry.Scene("skelly/only_head.glb")
	require.True(t, ok)
	assert.Same(t, reloaded, got)
	assert.False(t, got.Activated)
	assert.Equal(t, 1, h.registry.Len())

	fresh := testCatalog(t, "skelly/half_body.glb", animation.SkellyHalfBody, owner)
	ecs.Send(h.w, component.ReloadCatalogEvent, component.ReloadCatalog{Catalog: fresh})
	h.tick(1)
	assert.Equal(t, 2, h.registry.Len())

	ecs.Send(h.w, component.RemoveCatalogEvent, component.RemoveCatalog{Owner: owner})
	h.tick(1)
	assert.Equal(t, 0, h.registry.Len())
	assert.Zero(t, h.warnings("no catalog to remove"))

	ecs.Send(h.w, component.RemoveCatalogEvent, component.RemoveCatalog{Owner: owner})
	h.tick(1)
	assert.Equal(t, 1, h.warnings("no catalog to remove"))
}

func TestFormUpgradeWhileWalkingPlaysSpawn(t *testing.T) {
	h := newHarness(t)
	skelly, err := entity.NewSkelly(h.w, h.skelly, component.FormOnlyHead)
	require.NoError(t, err)
	h.tick(2)

	ecs.Send(h.w, component.ChangeAnimationEvent, component.ChangeAnimation{Target: uint64(skelly), Clip: animation.Idle, Repeat: true})
	h.tick(1)

	input, _ := ecs.Get(h.w, skelly, component.InputComponent.Kind())
	creature, _ := ecs.Get(h.w, skelly, component.CreatureComponent.Kind())
	body, _ := ecs.Get(h.w, skelly, component.PhysicsBodyComponent.Kind())
	input.MoveX = 1
	h.tick(1)
	require.Equal(t, animation.Walk, creature.Current)

	inv, _ := ecs.Get(h.w, skelly, component.InventoryComponent.Kind())
	inv.Add(animation.Bone, 4)
	h.tick(1)
	require.Equal(t, animation.SkellyHalfBody, creature.Archetype)
	assert.Equal(t, cp.Vector{}, body.Velocity)

	input.MoveX = 0
	h.tick(1)

	assert.Equal(t, animation.Spawn, creature.Current)
	assert.Equal(t, cp.Vector{}, body.Velocity)
	player := linkedPlayer(t, h.w, skelly)
	assert.Equal(t, prefabs.ClipRef("models/skeleton/half_body.glb", animation.Spawn), player.Clip)
	assert.False(t, player.Loop)

	// Input keeps being ignored until the spawn clip hands over to idle.
	input.MoveX = 1
	h.tick(1)
	assert.Equal(t, animation.Spawn, creature.Current)
	assert.Equal(t, cp.Vector{}, body.Velocity)
}

func TestLinkKeepsStaleLinkOfDeadSurface(t *testing.T) {
	h := newHarness(t)
	creature := newLinkedCreature(t, h.w, animation.SkellyOnlyHead, animation.Idle)
	link, _ := ecs.Get(h.w, creature, component.AnimationLinkComponent.Kind())
	first := link.Player
	ecs.DestroyEntity(h.w, ecs.Entity(first))

	second := ecs.CreateEntity(h.w)
	require.NoError(t, ecs.Add(h.w, second, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(creature)}))
	require.NoError(t, ecs.Add(h.w, second, component.AnimationPlayerComponent.Kind(), &component.AnimationPlayer{}))
	require.NoError(t, ecs.Add(h.w, second, component.AnimationPlayerAddedComponent.Kind(), &component.AnimationPlayerAdded{}))

	NewAnimationLinkSystem(h.log).Update(h.w)

	assert.Equal(t, 1, h.warnings("creature already linked to a playback surface"))
	link, _ = ecs.Get(h.w, creature, component.AnimationLinkComponent.Kind())
	assert.Equal(t, first, link.Player)
}
