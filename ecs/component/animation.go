package component

import (
	"time"

	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/common"
)

// Creature is the top-level entity of anything that plays animations.
type Creature struct {
	Archetype animation.Archetype
	// Current is the logical clip last dispatched, not the asset actually
	// playing when the catalog fell back to its first clip.
	Current animation.ClipID
	// Initial is raised when the creature is first linked and again after
	// its playback was overridden.
	Initial   animation.Request
	Started   bool
	Direction common.Direction
}

var CreatureComponent = NewComponent[Creature]()

// PlaybackState counts down the clip playing on a creature.
type PlaybackState struct {
	animation.Stopwatch
}

var PlaybackStateComponent = NewComponent[PlaybackState]()

// AnimationLink points a creature at the entity carrying its playback
// surface.
type AnimationLink struct {
	Player uint64
}

var AnimationLinkComponent = NewComponent[AnimationLink]()

// AnimationPlayer is a playback surface inside a loaded scene.
type AnimationPlayer struct {
	Clip    animation.ClipRef
	Loop    bool
	Playing bool
	Time    time.Duration
	Length  time.Duration
}

// Play starts clip from the beginning.
func (p *AnimationPlayer) Play(clip animation.ClipRef, loop bool) {
	p.Clip = clip
	p.Loop = loop
	p.Playing = true
	p.Time = 0
}

var AnimationPlayerComponent = NewComponent[AnimationPlayer]()

// AnimationPlayerAdded marks a playback surface created this tick.
type AnimationPlayerAdded struct{}

var AnimationPlayerAddedComponent = NewComponent[AnimationPlayerAdded]()

// ChangeAnimation asks the dispatcher to play a clip on a creature.
type ChangeAnimation struct {
	Target uint64
	Clip   animation.ClipID
	Repeat bool
}

var ChangeAnimationEvent = NewEventKind[ChangeAnimation]()

type AddCatalog struct {
	Catalog *animation.Catalog
}

var AddCatalogEvent = NewEventKind[AddCatalog]()

// RemoveCatalog drops every catalog loaded for Owner.
type RemoveCatalog struct {
	Owner uint64
}

var RemoveCatalogEvent = NewEventKind[RemoveCatalog]()

// ReloadCatalog replaces the catalog loaded from the same scene for the
// same owner.
type ReloadCatalog struct {
	Catalog *animation.Catalog
}

var ReloadCatalogEvent = NewEventKind[ReloadCatalog]()
