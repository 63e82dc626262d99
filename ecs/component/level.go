package component

// FloorTile is one cell of the map grid.
type FloorTile struct {
	I    int
	J    int
	Room string
}

var FloorTileComponent = NewComponent[FloorTile]()
