package animation

// Request asks for a clip to be played on a creature.
type Request struct {
	Clip   ClipID
	Repeat bool
}

// Next picks what plays after finished ends on a creature of archetype a.
// The second result is false when the clip is a steady or terminal state
// that waits for an external command.
func Next(a Archetype, finished ClipID) (Request, bool) {
	if !a.IsSkeleton() {
		return Request{Clip: FirstClip, Repeat: true}, true
	}

	switch ClipFromIndex(int(finished)) {
	case Idle, Walk, Run:
		return Request{}, false
	case LookingAround:
		return Request{Clip: Idle, Repeat: true}, true
	case Spawn:
		return Request{Clip: LookingAround}, true
	case Attack, Yell, Fall, Hit, Die, Hanged:
		return Request{}, false
	default:
		return Request{Clip: Spawn}, true
	}
}

// CanMove reports whether movement input may interrupt the current clip.
// Every archetype shares the same rule.
func CanMove(_ Archetype, current ClipID) bool {
	switch current {
	case Idle, Walk, Run:
		return true
	}
	return false
}
