package component

import "github.com/jakecoffman/cp"

type Camera struct {
	Target     uint64
	Position   cp.Vector
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
