package entity

import (
	"fmt"

	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
)

// NewMessage puts text on the HUD until the returned entity is destroyed.
func NewMessage(w *ecs.World, text string) (ecs.Entity, error) {
	msg := ecs.CreateEntity(w)
	if err := ecs.Add(w, msg, component.MessageComponent.Kind(), &component.Message{Text: text}); err != nil {
		return 0, fmt.Errorf("message: add message: %w", err)
	}
	return msg, nil
}
