package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/common"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"golang.org/x/image/colornames"
)

var roomColors = map[string]color.Color{
	"room2":     colornames.Dimgray,
	"corridor2": colornames.Slategray,
	"corridor3": colornames.Slategray,
	"room3":     colornames.Gray,
	"room4":     colornames.Darkslategray,
}

// RenderSystem draws the world in isometric projection around the camera.
type RenderSystem struct {
	scale    float64
	tileSize float64
	debug    bool

	camEntity ecs.Entity
}

func NewRenderSystem(scale, tileSize float64, debug bool) *RenderSystem {
	if scale <= 0 {
		scale = 24
	}
	return &RenderSystem{scale: scale, tileSize: tileSize, debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	cam := cp.Vector{}
	zoom := 1.0
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		cam = camComp.Position
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
	}

	bounds := screen.Bounds()
	cx, cy := float64(bounds.Dx())/2, float64(bounds.Dy())/2
	project := func(p cp.Vector) (float32, float32) {
		x, y := common.IsoProject(p, cam, r.scale*zoom)
		return float32(cx + x), float32(cy + y)
	}

	r.drawFloor(w, screen, project)
	r.drawGates(w, screen, project)

	entities := w.Query(component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind())
	// Paint far entities first.
	sort.SliceStable(entities, func(i, j int) bool {
		ti, _ := ecs.Get(w, entities[i], component.TransformComponent.Kind())
		tj, _ := ecs.Get(w, entities[j], component.TransformComponent.Kind())
		return ti.Position.X+ti.Position.Y > tj.Position.X+tj.Position.Y
	})

	for _, e := range entities {
		if ecs.Has(w, e, component.GateComponent.Kind()) {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		x, y := project(t.Position)

		radius := body.Radius
		if radius <= 0 {
			radius = body.Width / 2
		}
		px := float32(radius * r.scale * zoom)

		switch {
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			vector.FillCircle(screen, x, y, px, colornames.Ivory, true)
			if creature, ok := ecs.Get(w, e, component.CreatureComponent.Kind()); ok {
				hx, hy := project(t.Position.Add(creature.Direction.Vector().Normalize().Mult(radius * 1.5)))
				vector.StrokeLine(screen, x, y, hx, hy, 2, colornames.Lightgrey, true)
			}
		case ecs.Has(w, e, component.BonePartComponent.Kind()):
			vector.FillCircle(screen, x, y, px, colornames.Wheat, true)
			dx, dy := project(t.Position.Add(cp.ForAngle(t.Rotation).Mult(radius)))
			vector.StrokeLine(screen, x, y, dx, dy, 2, colornames.Saddlebrown, true)
		case ecs.Has(w, e, component.BonePackComponent.Kind()):
			img := CachedImage("bone_pack", newPackImage)
			op := &ebiten.DrawImageOptions{}
			size := float64(img.Bounds().Dx())
			op.GeoM.Scale(float64(px)*2/size, float64(px)*2/size)
			op.GeoM.Translate(float64(x-px), float64(y-px))
			if pack, _ := ecs.Get(w, e, component.BonePackComponent.Kind()); pack.Consumed {
				op.ColorScale.ScaleAlpha(0.4)
			}
			screen.DrawImage(img, op)
		case ecs.Has(w, e, component.ChainComponent.Kind()):
			vector.StrokeCircle(screen, x, y, px, 2, colornames.Darkgoldenrod, true)
		case ecs.Has(w, e, component.EndZoneComponent.Kind()):
			if r.debug {
				vector.StrokeCircle(screen, x, y, px, 1, colornames.Seagreen, true)
			}
		}

		if r.debug {
			r.drawLabel(w, screen, e, x, y)
		}
	}
}

func (r *RenderSystem) drawFloor(w *ecs.World, screen *ebiten.Image, project func(cp.Vector) (float32, float32)) {
	half := r.tileSize / 2
	if half <= 0 {
		half = 1.4
	}
	ecs.ForEach2(w, component.FloorTileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, tile *component.FloorTile, t *component.Transform) {
		clr, ok := roomColors[tile.Room]
		if !ok {
			clr = colornames.Gray
		}
		corners := [4]cp.Vector{
			t.Position.Add(cp.Vector{X: half, Y: half}),
			t.Position.Add(cp.Vector{X: half, Y: -half}),
			t.Position.Add(cp.Vector{X: -half, Y: -half}),
			t.Position.Add(cp.Vector{X: -half, Y: half}),
		}
		for i := range corners {
			ax, ay := project(corners[i])
			bx, by := project(corners[(i+1)%len(corners)])
			vector.StrokeLine(screen, ax, ay, bx, by, 1, clr, false)
		}
	})
}

func (r *RenderSystem) drawGates(w *ecs.World, screen *ebiten.Image, project func(cp.Vector) (float32, float32)) {
	ecs.ForEach2(w, component.GateComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, gate *component.Gate, t *component.Transform) {
		if gate.State == component.GateOpened {
			return
		}
		width := 5.0
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Width > 0 {
			width = body.Width
		}
		along := cp.ForAngle(t.Rotation).Mult(width / 2)
		ax, ay := project(t.Position.Sub(along))
		bx, by := project(t.Position.Add(along))
		sink := float32(gate.Depth * r.scale)
		height := float32(3.3*r.scale) - sink
		for _, off := range []float32{0, height / 2, height} {
			vector.StrokeLine(screen, ax, ay-off, bx, by-off, 3, colornames.Darkred, true)
		}
		vector.StrokeLine(screen, ax, ay, ax, ay-height, 3, colornames.Darkred, true)
		vector.StrokeLine(screen, bx, by, bx, by-height, 3, colornames.Darkred, true)
	})
}

func (r *RenderSystem) drawLabel(w *ecs.World, screen *ebiten.Image, e ecs.Entity, x, y float32) {
	creature, ok := ecs.Get(w, e, component.CreatureComponent.Kind())
	if !ok {
		return
	}
	label := fmt.Sprintf("%s %s", creature.Archetype, creature.Current)
	if link, ok := ecs.Get(w, e, component.AnimationLinkComponent.Kind()); ok {
		if player, ok := ecs.Get(w, ecs.Entity(link.Player), component.AnimationPlayerComponent.Kind()); ok && player.Clip != "" {
			label = fmt.Sprintf("%s\n%s %.2fs", label, player.Clip, player.Time.Seconds())
		}
	}
	if creature.Current == animation.ClipNone {
		label += " (loading)"
	}
	ebitenutil.DebugPrintAt(screen, label, int(x)+8, int(y)-24)
}

func newPackImage() *ebiten.Image {
	img := ebiten.NewImage(32, 32)
	vector.FillCircle(img, 16, 16, 15, colornames.Burlywood, true)
	for _, p := range [][2]float32{{10, 12}, {21, 11}, {15, 21}} {
		vector.StrokeLine(img, p[0]-4, p[1]-2, p[0]+4, p[1]+2, 3, colornames.Ivory, true)
	}
	return img
}
