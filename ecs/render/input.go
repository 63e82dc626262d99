package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
)

const stickDeadzone = 0.4

// InputSystem samples keyboard and gamepad state into every Input
// component.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	run := ebiten.IsKeyPressed(ebiten.KeyShift)
	cycle := inpututil.IsKeyJustPressed(ebiten.KeyC)
	debugParts := inpututil.IsKeyJustPressed(ebiten.KeyB)

	moveX, moveY := 0, 0
	if left {
		moveX--
	}
	if right {
		moveX++
	}
	if up {
		moveY++
	}
	if down {
		moveY--
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx < -stickDeadzone {
			moveX = -1
		} else if lx > stickDeadzone {
			moveX = 1
		}
		// Stick Y grows downward.
		if ly < -stickDeadzone {
			moveY = 1
		} else if ly > stickDeadzone {
			moveY = -1
		}
		run = run || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		cycle = cycle || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
		input.Run = run
		input.CycleForm = cycle
		input.DebugParts = debugParts
	})
}
