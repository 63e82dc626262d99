package animation

import "time"

// pendingDuration keeps a freshly created stopwatch from expiring before
// the first dispatch gives it the real clip length.
const pendingDuration = 1000 * time.Second

// Override is a cancellation token: once requested, the next sweep treats
// the countdown as expired no matter how much time is left.
type Override struct {
	requested bool
}

// Request arms the token.
func (o *Override) Request() {
	o.requested = true
}

// Requested reports whether the token is armed.
func (o *Override) Requested() bool {
	return o.requested
}

func (o *Override) consume() bool {
	if !o.requested {
		return false
	}
	o.requested = false
	return true
}

// Stopwatch counts down the clip currently playing on one creature.
type Stopwatch struct {
	Clip     ClipID
	Duration time.Duration
	Elapsed  time.Duration
	Override Override
}

func NewStopwatch(clip ClipID) Stopwatch {
	return Stopwatch{Clip: clip, Duration: pendingDuration}
}

// Tick advances the countdown.
func (s *Stopwatch) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.Elapsed += dt
}

// Finished reports whether the clip length has elapsed.
func (s *Stopwatch) Finished() bool {
	return s.Elapsed >= s.Duration
}

// Remaining is the time left before the countdown finishes.
func (s *Stopwatch) Remaining() time.Duration {
	if s.Finished() {
		return 0
	}
	return s.Duration - s.Elapsed
}

// Expired reports whether the clip is over, either naturally or because the
// override token was armed. Reading the token disarms it.
func (s *Stopwatch) Expired() (expired, overridden bool) {
	if s.Override.consume() {
		return true, true
	}
	return s.Finished(), false
}

// Restart rewinds the countdown without changing the clip.
func (s *Stopwatch) Restart() {
	s.Elapsed = 0
}

// Reset starts counting down a new clip.
func (s *Stopwatch) Reset(clip ClipID, duration time.Duration) {
	s.Clip = clip
	s.Duration = duration
	s.Elapsed = 0
}
