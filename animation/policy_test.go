package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSkeleton(t *testing.T) {
	tests := []struct {
		finished ClipID
		want     Request
		ok       bool
	}{
		{Idle, Request{}, false},
		{Walk, Request{}, false},
		{Run, Request{}, false},
		{LookingAround, Request{Clip: Idle, Repeat: true}, true},
		{Spawn, Request{Clip: LookingAround, Repeat: false}, true},
		{Attack, Request{}, false},
		{Yell, Request{}, false},
		{Fall, Request{}, false},
		{Hit, Request{}, false},
		{Die, Request{}, false},
		{Hanged, Request{}, false},
		{ClipNone, Request{Clip: Spawn, Repeat: false}, true},
		{ClipID(57), Request{Clip: Spawn, Repeat: false}, true},
	}
	for _, a := range []Archetype{SkellyFullBody, SkellyHalfBody, SkellyOnlyHead} {
		for _, tc := range tests {
			got, ok := Next(a, tc.finished)
			assert.Equal(t, tc.ok, ok, "%s after %s", a, tc.finished)
			assert.Equal(t, tc.want, got, "%s after %s", a, tc.finished)
		}
	}
}

func TestNextProps(t *testing.T) {
	for _, a := range []Archetype{Bone, Head, Chest, Leg, Arm} {
		for _, finished := range append(Clips(), ClipNone) {
			got, ok := Next(a, finished)
			assert.True(t, ok)
			assert.Equal(t, Request{Clip: FirstClip, Repeat: true}, got, "%s after %s", a, finished)
		}
	}
}

func TestNextIsPure(t *testing.T) {
	a, okA := Next(SkellyOnlyHead, Spawn)
	b, okB := Next(SkellyOnlyHead, Spawn)
	assert.Equal(t, a, b)
	assert.Equal(t, okA, okB)
}

func TestCanMove(t *testing.T) {
	movable := map[ClipID]bool{Idle: true, Walk: true, Run: true}
	for _, a := range Archetypes() {
		for _, c := range append(Clips(), ClipNone) {
			assert.Equal(t, movable[c], CanMove(a, c), "%s %s", a, c)
		}
	}
}
