package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
)

// SceneSpawnRequest asks the scene loader to instantiate a scene under the
// entity once its catalog is registered.
type SceneSpawnRequest struct {
	Scene     string
	Archetype animation.Archetype
	Offset    cp.Vector
}

var SceneSpawnRequestComponent = NewComponent[SceneSpawnRequest]()

// SceneInstance marks the root of a loaded scene.
type SceneInstance struct {
	Scene     string
	Archetype animation.Archetype
	Offset    cp.Vector
}

var SceneInstanceComponent = NewComponent[SceneInstance]()

type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
