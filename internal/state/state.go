// internal/state/state.go
package state

// Phase is the coarse lifecycle position of a state.
type Phase int

const (
	Stopped Phase = iota
	Running
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// State is one lifecycle state. Enter acquires what the state needs, Exit
// releases all of it.
type State interface {
	Enter()
	Exit()
	Phase() Phase
}

// StateMachine holds exactly one current state.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine sitting in Idle.
func NewStateMachine() *StateMachine {
	return &StateMachine{current: Idle{}}
}

// SetState exits the current state and enters newState. A nil state means Idle.
func (sm *StateMachine) SetState(newState State) {
	if newState == nil {
		newState = Idle{}
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	sm.current.Enter()
}

// Current returns the current state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Phase returns the phase of the current state.
func (sm *StateMachine) Phase() Phase {
	if sm.current == nil {
		return Stopped
	}
	return sm.current.Phase()
}

// Idle is the stopped state: it owns nothing.
type Idle struct{}

func (Idle) Enter()       {}
func (Idle) Exit()        {}
func (Idle) Phase() Phase { return Stopped }
