package ecs

type System interface {
	Update(w *World)
}

// Phase orders systems within a tick.
type Phase uint8

const (
	PhaseEarly Phase = iota
	PhaseMain
	PhaseLate
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMain:
		return "main"
	case PhaseLate:
		return "late"
	default:
		return "unknown"
	}
}

type Scheduler struct {
	phases [phaseCount][]System
}

// NewScheduler creates a scheduler with systems in the main phase.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(PhaseMain, system)
	}
	return s
}

func (s *Scheduler) Add(phase Phase, system System) {
	if system == nil || phase >= phaseCount {
		return
	}
	s.phases[phase] = append(s.phases[phase], system)
}

// Update runs every phase in order, systems within a phase in insertion
// order.
func (s *Scheduler) Update(w *World) {
	for _, systems := range s.phases {
		for _, system := range systems {
			system.Update(w)
		}
	}
}

func (s *Scheduler) Systems() []System {
	var systems []System
	for _, phase := range s.phases {
		systems = append(systems, phase...)
	}
	return systems
}
