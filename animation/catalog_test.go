package animation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCatalog(t *testing.T, scene string, a Archetype, owner uint64) *Catalog {
	t.Helper()
	c := NewCatalog(scene, a, owner)
	for _, id := range Clips() {
		require.NoError(t, c.Register(id, id.DefaultDuration(), ClipRef(scene+"#"+id.String())))
	}
	return c
}

func TestCatalogRegister(t *testing.T) {
	c := NewCatalog("head.glb", SkellyOnlyHead, 1)

	tests := []struct {
		name     string
		id       ClipID
		duration time.Duration
		ref      ClipRef
		want     error
	}{
		{"ok", Idle, time.Second, "head.glb#Animation1", nil},
		{"zero duration", Walk, 0, "head.glb#Animation5", ErrInvalidDuration},
		{"negative duration", Walk, -time.Second, "head.glb#Animation5", ErrInvalidDuration},
		{"empty ref", Walk, time.Second, "", ErrEmptyClipRef},
		{"invalid clip", ClipNone, time.Second, "head.glb#Animation99", ErrInvalidClip},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := c.Register(tc.id, tc.duration, tc.ref)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 1, c.Len())
}

func TestCatalogRoundTrip(t *testing.T) {
	c := fullCatalog(t, "full.glb", SkellyFullBody, 1)
	for _, id := range Clips() {
		e := c.Resolve(id)
		assert.Positive(t, int64(e.Duration))
		assert.Equal(t, id.DefaultDuration(), e.Duration)
		assert.Equal(t, ClipRef("full.glb#"+id.String()), e.Clip)
	}
	assert.Equal(t, Clips(), c.Clips())
}

func TestCatalogResolveFallback(t *testing.T) {
	part := NewCatalog("bone.glb", Bone, 0)
	require.NoError(t, part.Register(FirstClip, Seconds(1.58), "bone.glb#Animation0"))

	e := part.Resolve(LookingAround)
	assert.Equal(t, ClipRef("bone.glb#Animation0"), e.Clip)

	head := NewCatalog("head.glb", SkellyOnlyHead, 7)
	require.NoError(t, head.Register(FirstClip, Seconds(1.30), "head.glb#Animation0"))
	require.NoError(t, head.Register(Idle, Seconds(1.58), "head.glb#Animation1"))
	assert.Equal(t, ClipRef("head.glb#Animation1"), head.Resolve(Idle).Clip, "present index is served as is")
	assert.Equal(t, ClipRef("head.glb#Animation0"), head.Resolve(Walk).Clip)
}

func TestCatalogResolvePanics(t *testing.T) {
	full := NewCatalog("full.glb", SkellyFullBody, 1)
	require.NoError(t, full.Register(Spawn, Seconds(1.30), "full.glb#Animation0"))

	assertPanicsWith(t, ErrClipNotRegistered, func() { full.Resolve(Idle) })

	empty := NewCatalog("bone.glb", Bone, 0)
	assertPanicsWith(t, ErrClipNotRegistered, func() { empty.Resolve(Idle) })
}

func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "got %v", err)
	}()
	fn()
}
