package common

import "github.com/jakecoffman/cp"

// Map axes: I runs along a room's rows, J along its columns.
var (
	IShift = cp.Vector{X: -2.8, Y: 2.9}
	JShift = cp.Vector{X: 2.9, Y: 2.8}
)

// Grid returns the world position of map cell (i, j).
func Grid(i, j float64) cp.Vector {
	return IShift.Mult(i).Add(JShift.Mult(j))
}

// IsoProject maps a world position onto screen space relative to a camera
// position, with scale pixels per world unit.
func IsoProject(p, cam cp.Vector, scale float64) (float64, float64) {
	d := p.Sub(cam)
	return (d.X - d.Y) * scale * 0.7, -(d.X + d.Y) * scale * 0.35
}
