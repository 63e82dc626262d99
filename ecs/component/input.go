package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX      int
	MoveY      int
	Run        bool
	CycleForm  bool
	DebugParts bool
}

var InputComponent = NewComponent[Input]()
