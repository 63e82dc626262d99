package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// TileSpec is one floor cell produced by the level script.
type TileSpec struct {
	I    int    `yaml:"i"`
	J    int    `yaml:"j"`
	Room string `yaml:"room"`
}

// FloorTiles runs the level's script over its rooms and returns the floor
// cells it lays out.
func (l *LevelSpec) FloorTiles() ([]TileSpec, error) {
	src, err := LoadScript(l.Script)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", l.Script, err)
	}

	rooms := make([]any, 0, len(l.Rooms))
	for _, r := range l.Rooms {
		rooms = append(rooms, map[string]any{
			"name": r.Name,
			"i0":   r.I[0],
			"i1":   r.I[1],
			"j0":   r.J[0],
			"j1":   r.J[1],
		})
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("rooms", rooms); err != nil {
		return nil, fmt.Errorf("prefabs: script %s: %w", l.Script, err)
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("prefabs: run script %s: %w", l.Script, err)
	}
	if !compiled.IsDefined("tiles") {
		return nil, fmt.Errorf("prefabs: script %s does not define tiles", l.Script)
	}

	tiles, err := Decode[[]TileSpec](compiled.Get("tiles").Value())
	if err != nil {
		return nil, fmt.Errorf("prefabs: decode tiles of %s: %w", l.Script, err)
	}
	return tiles, nil
}
