package component

// PlayerController tunes player movement, in world units per second.
type PlayerController struct {
	WalkSpeed float64
	RunSpeed  float64
	Moving    bool
}

var PlayerControllerComponent = NewComponent[PlayerController]()
