package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkellyQueuesEveryFormCatalog(t *testing.T) {
	spec, err := prefabs.LoadSkellySpec()
	require.NoError(t, err)
	w := ecs.NewWorld()

	skelly, err := NewSkelly(w, spec, component.FormHalfBody)
	require.NoError(t, err)

	creature, ok := ecs.Get(w, skelly, component.CreatureComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, animation.SkellyHalfBody, creature.Archetype)
	assert.Equal(t, animation.ClipNone, creature.Current)
	assert.Equal(t, animation.Request{Clip: animation.Spawn}, creature.Initial)

	req, ok := ecs.Get(w, skelly, component.SceneSpawnRequestComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "models/skeleton/half_body.glb", req.Scene)

	adds := ecs.Drain(w, component.AddCatalogEvent)
	require.Len(t, adds, len(spec.Forms))
	active := 0
	for _, add := range adds {
		assert.Equal(t, uint64(skelly), add.Catalog.Owner)
		if add.Catalog.Activated {
			active++
			assert.Equal(t, animation.SkellyHalfBody, add.Catalog.Archetype)
		}
	}
	assert.Equal(t, 1, active)
}

func TestNewBonePartRejectsSkeletons(t *testing.T) {
	spec, err := prefabs.LoadPartsSpec()
	require.NoError(t, err)
	w := ecs.NewWorld()

	_, err = NewBonePart(w, spec, animation.SkellyFullBody, cp.Vector{})
	assert.Error(t, err)

	part, err := NewBonePart(w, spec, animation.Arm, cp.Vector{X: 1, Y: 2})
	require.NoError(t, err)
	body, ok := ecs.Get(w, part, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	assert.True(t, body.Sensor)
	assert.Equal(t, component.BodyKinematic, body.Type)
	assert.Equal(t, spec.Spin, body.Spin)
}

func TestNewFloorSpawnsEveryRoomTile(t *testing.T) {
	spec, err := prefabs.LoadLevelSpec()
	require.NoError(t, err)
	w := ecs.NewWorld()

	n, err := NewFloor(w, spec)
	require.NoError(t, err)
	assert.Equal(t, 78, n)
	assert.Len(t, w.Query(component.FloorTileComponent.Kind()), 78)
}

func TestNewGateParsesRequiredForm(t *testing.T) {
	spec, err := prefabs.LoadLevelSpec()
	require.NoError(t, err)
	w := ecs.NewWorld()

	gate, chain, err := NewGate(w, spec)
	require.NoError(t, err)
	g, _ := ecs.Get(w, gate, component.GateComponent.Kind())
	assert.Equal(t, component.FormFullBody, g.Requires)
	c, _ := ecs.Get(w, chain, component.ChainComponent.Kind())
	assert.Equal(t, uint64(gate), c.Gate)

	bad := *spec
	bad.Gate.Requires = "tail"
	_, _, err = NewGate(ecs.NewWorld(), &bad)
	assert.Error(t, err)
}
