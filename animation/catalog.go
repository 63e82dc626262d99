package animation

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrClipNotRegistered = errors.New("animation: clip not registered")
	ErrInvalidClip       = errors.New("animation: invalid clip index")
	ErrInvalidDuration   = errors.New("animation: duration must be positive")
	ErrEmptyClipRef      = errors.New("animation: empty clip reference")
)

// ClipRef is an opaque handle to an animation asset inside a scene file,
// e.g. "models/skeleton/head.glb#Animation0".
type ClipRef string

// Entry is one playable clip of a catalog.
type Entry struct {
	Duration time.Duration
	Clip     ClipRef
}

// Catalog maps clip indices of one loaded scene to their assets. Owner is
// the opaque handle of the creature the scene was loaded for, or 0 when the
// scene is shared by every creature of the archetype.
type Catalog struct {
	Scene     string
	Archetype Archetype
	Owner     uint64
	Activated bool

	entries map[ClipID]Entry
}

func NewCatalog(scene string, archetype Archetype, owner uint64) *Catalog {
	return &Catalog{
		Scene:     scene,
		Archetype: archetype,
		Owner:     owner,
		Activated: true,
		entries:   make(map[ClipID]Entry),
	}
}

// Register adds or replaces the entry for a clip.
func (c *Catalog) Register(id ClipID, duration time.Duration, clip ClipRef) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidClip, int(id))
	}
	if duration <= 0 {
		return fmt.Errorf("%w: %s/%s got %s", ErrInvalidDuration, c.Scene, id, duration)
	}
	if clip == "" {
		return fmt.Errorf("%w: %s/%s", ErrEmptyClipRef, c.Scene, id)
	}
	if c.entries == nil {
		c.entries = make(map[ClipID]Entry)
	}
	c.entries[id] = Entry{Duration: duration, Clip: clip}
	return nil
}

// Lookup returns the entry registered for exactly this clip.
func (c *Catalog) Lookup(id ClipID) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[id]
	return e, ok
}

// Resolve returns the entry to play for a clip. Catalogs of single-clip
// archetypes serve their first clip when the requested one is absent. A
// missing entry otherwise means the catalog was populated wrong and panics.
func (c *Catalog) Resolve(id ClipID) Entry {
	if e, ok := c.entries[id]; ok {
		return e
	}
	if c.Archetype.fallsBackToFirstClip() {
		if e, ok := c.entries[FirstClip]; ok {
			return e
		}
	}
	panic(fmt.Errorf("%w: scene %q (%s) has no clip %s", ErrClipNotRegistered, c.Scene, c.Archetype, id))
}

// Clips returns the registered clip indices in ascending order.
func (c *Catalog) Clips() []ClipID {
	if c == nil {
		return nil
	}
	out := make([]ClipID, 0, len(c.entries))
	for id := range c.entries {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of registered clips.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
