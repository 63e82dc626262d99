package animation

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ClipID is the logical animation index of a creature.
type ClipID int

const (
	Spawn ClipID = iota
	Idle
	LookingAround
	Attack
	Yell
	Walk
	Run
	Fall
	Hit
	Die
	Hanged

	// ClipNone stands for any index outside the known range.
	ClipNone ClipID = -1
)

// FirstClip is index 0, the only clip single-clip assets ship.
const FirstClip = Spawn

var clipNames = [...]string{
	Spawn:         "spawn",
	Idle:          "idle",
	LookingAround: "looking_around",
	Attack:        "attack",
	Yell:          "yell",
	Walk:          "walk",
	Run:           "run",
	Fall:          "fall",
	Hit:           "hit",
	Die:           "die",
	Hanged:        "hanged",
}

var clipDurations = [...]time.Duration{
	Spawn:         Seconds(1.30),
	Idle:          Seconds(1.58),
	LookingAround: Seconds(3.18),
	Attack:        Seconds(2.32),
	Yell:          Seconds(1.58),
	Walk:          Seconds(0.98),
	Run:           Seconds(0.78),
	Fall:          Seconds(1.1),
	Hit:           Seconds(0.62),
	Die:           Seconds(1.06),
	Hanged:        Seconds(1.58),
}

// Seconds converts a clip length in seconds, as authored in asset files,
// to a duration rounded to the nanosecond.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// ClipFromIndex converts a raw index, mapping anything out of range to ClipNone.
func ClipFromIndex(i int) ClipID {
	if i < int(Spawn) || i > int(Hanged) {
		return ClipNone
	}
	return ClipID(i)
}

// Clips lists the known clips in index order.
func Clips() []ClipID {
	out := make([]ClipID, 0, len(clipNames))
	for i := range clipNames {
		out = append(out, ClipID(i))
	}
	return out
}

// Valid reports whether the clip is a known index.
func (c ClipID) Valid() bool {
	return ClipFromIndex(int(c)) != ClipNone
}

func (c ClipID) String() string {
	if !c.Valid() {
		return "none"
	}
	return clipNames[c]
}

// DefaultDuration is the measured length of the clip in the skeleton rig.
func (c ClipID) DefaultDuration() time.Duration {
	if !c.Valid() {
		return 0
	}
	return clipDurations[c]
}

// ParseClip maps a prefab name such as "looking_around" to its clip.
func ParseClip(name string) (ClipID, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	for i, n := range clipNames {
		if n == clean {
			return ClipID(i), nil
		}
	}
	return ClipNone, fmt.Errorf("animation: unknown clip %q", name)
}
