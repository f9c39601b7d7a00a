package state

type StateMachineTraits interface {
	AvailableTransitions(fromState string, toState string) []Transition
	FindState(name string) (State, bool)
}

// stateless object, just used for state computing
type StateMachine struct {
	States      []State      `json:"states"`
	Transitions []Transition `json:"transitions"`
}

type Category uint

const (
	InBacklog Category = iota + 1
	InProcess
	Suspended
	Done
)

type State struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

type Transition struct {
	Name string `json:"name"`
	From State  `json:"from"`
	To   State  `json:"to"`
}

func NewStateMachine(states []State, transitions []Transition) *StateMachine {
	return &StateMachine{States: states, Transitions: transitions}
}

// NewUnconstrainedStateMachine builds a machine in which every state may follow every other state.
func NewUnconstrainedStateMachine(states []State) *StateMachine {
	var transitions []Transition
	for _, from := range states {
		for _, to := range states {
			if from.Name == to.Name {
				continue
			}
			transitions = append(transitions, Transition{Name: from.Name + "->" + to.Name, From: from, To: to})
		}
	}
	return NewStateMachine(states, transitions)
}

// AvailableTransitions matches any state when fromState or toState is empty
func (sm *StateMachine) AvailableTransitions(fromState string, toState string) []Transition {
	r := []Transition{}
	for _, transition := range sm.Transitions {
		if (fromState == "" || fromState == transition.From.Name) && (toState == "" || toState == transition.To.Name) {
			r = append(r, transition)
		}
	}
	return r
}

func (sm *StateMachine) FindState(name string) (State, bool) {
	for _, s := range sm.States {
		if s.Name == name {
			return s, true
		}
	}
	return State{}, false
}

func (sm *StateMachine) StateNames() []string {
	names := make([]string, 0, len(sm.States))
	for _, s := range sm.States {
		names = append(names, s.Name)
	}
	return names
}
