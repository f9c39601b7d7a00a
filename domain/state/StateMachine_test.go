package state_test

import (
	"shopfloor/domain/state"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("StateMachine", func() {
	var (
		stateMachine *state.StateMachine
		planned      = state.State{Name: "planned", Category: state.InBacklog}
		running      = state.State{Name: "in-progress", Category: state.InProcess}
		completed    = state.State{Name: "completed", Category: state.Done}
	)

	BeforeEach(func() {
		//              planned      in-progress   completed
		// planned        -            V (start)     X
		// in-progress    X            -             V (finish)
		// completed      V (reopen)   X             -
		stateMachine = state.NewStateMachine(
			[]state.State{planned, running, completed},
			[]state.Transition{
				{Name: "start", From: planned, To: running},
				{Name: "finish", From: running, To: completed},
				{Name: "reopen", From: completed, To: planned},
			})
	})

	Describe("AvailableTransitions", func() {
		It("should filter by the from state", func() {
			Ω(stateMachine.AvailableTransitions("planned", "")).Should(Equal([]state.Transition{
				{Name: "start", From: planned, To: running},
			}))
			Ω(stateMachine.AvailableTransitions("completed", "")).Should(Equal([]state.Transition{
				{Name: "reopen", From: completed, To: planned},
			}))
		})

		It("should filter by both states", func() {
			Ω(stateMachine.AvailableTransitions("in-progress", "completed")).Should(HaveLen(1))
			Ω(stateMachine.AvailableTransitions("planned", "completed")).Should(BeEmpty())
		})

		It("should return nothing for unknown states", func() {
			Ω(stateMachine.AvailableTransitions("UNKNOWN", "")).Should(BeEmpty())
		})
	})

	Describe("FindState", func() {
		It("should find states by name", func() {
			s, found := stateMachine.FindState("in-progress")
			Expect(found).To(BeTrue())
			Expect(s).To(Equal(running))

			_, found = stateMachine.FindState("scrapped")
			Expect(found).To(BeFalse())
		})
	})

	Describe("NewUnconstrainedStateMachine", func() {
		It("should allow every state to follow every other state", func() {
			sm := state.NewUnconstrainedStateMachine([]state.State{planned, running, completed})
			Expect(sm.Transitions).To(HaveLen(6))
			for _, from := range sm.StateNames() {
				for _, to := range sm.StateNames() {
					if from == to {
						Expect(sm.AvailableTransitions(from, to)).To(BeEmpty())
					} else {
						Expect(sm.AvailableTransitions(from, to)).To(HaveLen(1))
					}
				}
			}
		})
	})
})
