package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryActive(t *testing.T) {
	r := NewRegistry()
	head := fullCatalog(t, "head.glb", SkellyOnlyHead, 1)
	half := fullCatalog(t, "half.glb", SkellyHalfBody, 1)
	half.Activated = false
	other := fullCatalog(t, "head.glb", SkellyOnlyHead, 2)
	shared := fullCatalog(t, "bone.glb", Bone, 0)
	r.Add(head)
	r.Add(half)
	r.Add(other)
	r.Add(shared)

	got, ok := r.Active(1, SkellyOnlyHead)
	require.True(t, ok)
	assert.Same(t, head, got)

	got, ok = r.Active(2, SkellyOnlyHead)
	require.True(t, ok)
	assert.Same(t, other, got)

	_, ok = r.Active(1, SkellyHalfBody)
	assert.False(t, ok, "deactivated catalog must not match")

	got, ok = r.Active(9, Bone)
	require.True(t, ok)
	assert.Same(t, shared, got)

	_, ok = r.Active(1, SkellyFullBody)
	assert.False(t, ok)
}

func TestRegistryActivate(t *testing.T) {
	r := NewRegistry()
	r.Add(fullCatalog(t, "head.glb", SkellyOnlyHead, 1))
	r.Add(fullCatalog(t, "half.glb", SkellyHalfBody, 1))
	r.Add(fullCatalog(t, "full.glb", SkellyFullBody, 1))
	r.Add(fullCatalog(t, "head.glb", SkellyOnlyHead, 2))

	assert.Equal(t, 1, r.Activate(1, SkellyHalfBody))

	_, ok := r.Active(1, SkellyOnlyHead)
	assert.False(t, ok)
	_, ok = r.Active(1, SkellyHalfBody)
	assert.True(t, ok)
	_, ok = r.Active(2, SkellyOnlyHead)
	assert.True(t, ok, "other owners are untouched")
}

func TestRegistryRemoveOwner(t *testing.T) {
	r := NewRegistry()
	r.Add(fullCatalog(t, "head.glb", SkellyOnlyHead, 1))
	r.Add(fullCatalog(t, "bone.glb", Bone, 0))
	r.Add(fullCatalog(t, "half.glb", SkellyHalfBody, 1))
	r.Add(fullCatalog(t, "head.glb", SkellyOnlyHead, 2))

	assert.Equal(t, 2, r.RemoveOwner(1))
	assert.Equal(t, 2, r.Len())
	assert.Zero(t, r.RemoveOwner(1))
	assert.Zero(t, r.RemoveOwner(0), "shared catalogs are never removed by owner")

	for _, c := range r.All() {
		assert.NotEqual(t, uint64(1), c.Owner)
	}
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	old := fullCatalog(t, "head.glb", SkellyOnlyHead, 1)
	old.Activated = false
	r.Add(old)

	fresh := NewCatalog("head.glb", SkellyOnlyHead, 1)
	require.NoError(t, fresh.Register(Spawn, Seconds(2), "head.glb#Animation0"))
	require.True(t, r.Replace(fresh))
	assert.False(t, fresh.Activated, "activated flag carries over")
	assert.Equal(t, 1, r.Len())

	got, ok := r.Scene("head.glb")
	require.True(t, ok)
	assert.Same(t, fresh, got)

	assert.False(t, r.Replace(NewCatalog("missing.glb", Bone, 0)))
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	r.Add(NewCatalog("x", Bone, 0))
	_, ok := r.Active(0, Bone)
	assert.False(t, ok)
	assert.Zero(t, r.Len())
	assert.Zero(t, r.RemoveOwner(1))
}
