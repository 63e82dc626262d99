package component

import "github.com/milk9111/bonecollector/animation"

// BonePack scatters its parts around itself the first time the player
// touches it.
type BonePack struct {
	Parts    []animation.Archetype
	Consumed bool
}

var BonePackComponent = NewComponent[BonePack]()

// BonePart is a collectable that grants one item of Item.
type BonePart struct {
	Item animation.Archetype
}

var BonePartComponent = NewComponent[BonePart]()
