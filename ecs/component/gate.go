package component

type GateState uint8

const (
	GateClosed GateState = iota
	GateOpening
	GateOpened
)

func (s GateState) String() string {
	switch s {
	case GateClosed:
		return "closed"
	case GateOpening:
		return "opening"
	case GateOpened:
		return "opened"
	}
	return "unknown"
}

// Gate sinks into the floor once a skeleton in the Requires form pulls its
// chain, Step per tick until Depth reaches Limit.
type Gate struct {
	State    GateState
	Requires Form
	Depth    float64
	Step     float64
	Limit    float64
}

var GateComponent = NewComponent[Gate]()

// Chain is the trigger in front of a gate. Touching it either opens the
// gate or leaves Hint on screen.
type Chain struct {
	Gate    uint64
	Hint    string
	Message uint64
}

var ChainComponent = NewComponent[Chain]()

type EndZone struct {
	Text    string
	Reached bool
}

var EndZoneComponent = NewComponent[EndZone]()

// Message is text shown by the HUD while the entity lives.
type Message struct {
	Text string
}

var MessageComponent = NewComponent[Message]()
