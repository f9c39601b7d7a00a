package domain

import (
	"shopfloor/domain/state"
)

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in-progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"

	// StatusAll is only meaningful as a filter value.
	StatusAll Status = "all"
)

var (
	StatePlanned    = state.State{Name: string(StatusPlanned), Category: state.InBacklog}
	StateInProgress = state.State{Name: string(StatusInProgress), Category: state.InProcess}
	StatePaused     = state.State{Name: string(StatusPaused), Category: state.Suspended}
	StateCompleted  = state.State{Name: string(StatusCompleted), Category: state.Done}
	StateOnHold     = state.State{Name: string(StatusOnHold), Category: state.Suspended}

	// WorkOrderStateMachine does not restrict transitions, any status may follow any other.
	WorkOrderStateMachine = state.NewUnconstrainedStateMachine(
		[]state.State{StatePlanned, StateInProgress, StatePaused, StateCompleted, StateOnHold})
)

func (s Status) Valid() bool {
	_, found := WorkOrderStateMachine.FindState(string(s))
	return found
}

func (s Status) State() (state.State, bool) {
	return WorkOrderStateMachine.FindState(string(s))
}

func (s Status) IsDone() bool {
	st, found := s.State()
	return found && st.Category == state.Done
}

func Statuses() []Status {
	var r []Status
	for _, name := range WorkOrderStateMachine.StateNames() {
		r = append(r, Status(name))
	}
	return r
}
