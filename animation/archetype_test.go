package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchetype(t *testing.T) {
	for _, a := range Archetypes() {
		got, err := ParseArchetype(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseArchetype("dragon")
	assert.Error(t, err)
}

func TestIsSkeleton(t *testing.T) {
	assert.True(t, SkellyFullBody.IsSkeleton())
	assert.True(t, SkellyHalfBody.IsSkeleton())
	assert.True(t, SkellyOnlyHead.IsSkeleton())
	for _, a := range []Archetype{Bone, Head, Chest, Leg, Arm} {
		assert.False(t, a.IsSkeleton(), a.String())
	}
	assert.Panics(t, func() { Archetype(99).IsSkeleton() })
}

func TestClipFromIndex(t *testing.T) {
	tests := []struct {
		index int
		want  ClipID
	}{
		{0, Spawn},
		{1, Idle},
		{2, LookingAround},
		{10, Hanged},
		{11, ClipNone},
		{-1, ClipNone},
		{1000, ClipNone},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClipFromIndex(tc.index), "index %d", tc.index)
	}
}

func TestClipDurations(t *testing.T) {
	for _, c := range Clips() {
		assert.Positive(t, int64(c.DefaultDuration()), c.String())

		parsed, err := ParseClip(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, Seconds(1.58), Idle.DefaultDuration())
	assert.Equal(t, Seconds(3.18), LookingAround.DefaultDuration())
	assert.Zero(t, ClipNone.DefaultDuration())
	assert.Equal(t, "none", ClipID(42).String())
}
