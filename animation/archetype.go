package animation

import (
	"fmt"
	"strings"
)

// Archetype selects which catalog and transition policy apply to a creature.
// The set is closed: every switch over it lists all values and panics on
// anything else.
type Archetype uint8

const (
	SkellyFullBody Archetype = iota
	SkellyHalfBody
	SkellyOnlyHead
	Bone
	Head
	Chest
	Leg
	Arm
)

var archetypeNames = [...]string{
	SkellyFullBody: "skelly_full_body",
	SkellyHalfBody: "skelly_half_body",
	SkellyOnlyHead: "skelly_only_head",
	Bone:           "bone",
	Head:           "head",
	Chest:          "chest",
	Leg:            "leg",
	Arm:            "arm",
}

// Archetypes lists every archetype in declaration order.
func Archetypes() []Archetype {
	return []Archetype{SkellyFullBody, SkellyHalfBody, SkellyOnlyHead, Bone, Head, Chest, Leg, Arm}
}

func (a Archetype) String() string {
	if int(a) < len(archetypeNames) {
		return archetypeNames[a]
	}
	return fmt.Sprintf("archetype(%d)", uint8(a))
}

// ParseArchetype maps a prefab name such as "skelly_only_head" to its archetype.
func ParseArchetype(name string) (Archetype, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	for i, n := range archetypeNames {
		if n == clean {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("animation: unknown archetype %q", name)
}

// IsSkeleton reports whether the archetype is one of the playable skeleton
// forms. Props (loose bone parts) are not skeletons.
func (a Archetype) IsSkeleton() bool {
	switch a {
	case SkellyFullBody, SkellyHalfBody, SkellyOnlyHead:
		return true
	case Bone, Head, Chest, Leg, Arm:
		return false
	}
	panic(fmt.Sprintf("animation: unknown archetype %d", uint8(a)))
}

// fallsBackToFirstClip reports whether a catalog of this archetype may serve
// its first clip for indices its asset does not ship. Only the full body
// rig ships the whole clip set.
func (a Archetype) fallsBackToFirstClip() bool {
	switch a {
	case SkellyFullBody:
		return false
	case SkellyHalfBody, SkellyOnlyHead, Bone, Head, Chest, Leg, Arm:
		return true
	}
	panic(fmt.Sprintf("animation: unknown archetype %d", uint8(a)))
}
