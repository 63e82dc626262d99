package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var hudItems = []animation.Archetype{animation.Bone, animation.Arm, animation.Leg, animation.Chest}

// HUD shows the inventory counters in the corner and the current message
// centered near the bottom.
type HUD struct {
	ui       *ebitenui.UI
	counters map[animation.Archetype]*widget.Text
	form     *widget.Text
	message  *widget.Text
}

func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	h := &HUD{counters: make(map[animation.Archetype]*widget.Text, len(hudItems))}

	counters := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	h.form = widget.NewText(widget.TextOpts.Text("", &face, white))
	counters.AddChild(h.form)
	for _, item := range hudItems {
		t := widget.NewText(widget.TextOpts.Text(counterLabel(item, 0), &face, white))
		h.counters[item] = t
		counters.AddChild(t)
	}

	h.message = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionEnd}),
		),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(counters)
	root.AddChild(h.message)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Sync copies the player's inventory and the live messages into the labels.
func (h *HUD) Sync(w *ecs.World, player ecs.Entity) {
	if inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind()); ok {
		for item, t := range h.counters {
			t.Label = counterLabel(item, inv.Count(item))
		}
	}
	if form, ok := ecs.Get(w, player, component.SkellyFormComponent.Kind()); ok {
		h.form.Label = strings.ReplaceAll(form.Form.String(), "_", " ")
	}

	var lines []string
	ecs.ForEach(w, component.MessageComponent.Kind(), func(_ ecs.Entity, m *component.Message) {
		lines = append(lines, m.Text)
	})
	h.message.Label = strings.Join(lines, "\n")

	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func counterLabel(item animation.Archetype, n int) string {
	return fmt.Sprintf("%-5s x%d", item, n)
}
