package component

import "github.com/milk9111/bonecollector/animation"

// Inventory counts the bone parts a creature has collected.
type Inventory struct {
	Bone  int
	Arm   int
	Leg   int
	Chest int
}

// Add grants n items of kind and reports whether kind is collectable.
func (inv *Inventory) Add(kind animation.Archetype, n int) bool {
	switch kind {
	case animation.Bone:
		inv.Bone += n
	case animation.Arm:
		inv.Arm += n
	case animation.Leg:
		inv.Leg += n
	case animation.Chest:
		inv.Chest += n
	default:
		return false
	}
	return true
}

// Count returns the number of items of kind held.
func (inv *Inventory) Count(kind animation.Archetype) int {
	switch kind {
	case animation.Bone:
		return inv.Bone
	case animation.Arm:
		return inv.Arm
	case animation.Leg:
		return inv.Leg
	case animation.Chest:
		return inv.Chest
	}
	return 0
}

var InventoryComponent = NewComponent[Inventory]()
