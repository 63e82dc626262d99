package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Name labels an entity in logs and the debug view.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
