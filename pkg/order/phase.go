package order

// Phase is the step of the order flow currently on screen.
type Phase int

const (
	Entering Phase = iota
	Reviewing
	Completed
)

func (p Phase) String() string {
	switch p {
	case Entering:
		return "entering"
	case Reviewing:
		return "reviewing"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// PhaseController holds the current phase. Any phase may follow any other;
// the controller never changes phase on its own.
type PhaseController struct {
	phase Phase
}

// NewPhaseController starts in Entering.
func NewPhaseController() *PhaseController {
	return &PhaseController{phase: Entering}
}

// Phase returns the current phase.
func (c *PhaseController) Phase() Phase {
	return c.phase
}

// SetPhase overwrites the current phase.
func (c *PhaseController) SetPhase(next Phase) {
	c.phase = next
}
