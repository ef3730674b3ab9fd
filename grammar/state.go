package grammar

import (
	"fmt"

	"github.com/mvossen/protoglot"
)

// FilterTransitionsCallback narrows the list of transitions a State offers
// before selection. Receives a defensive copy; the Actor is passed rather
// than individual last_sent_*/last_received_*/memory fields (spec §6) so
// callbacks pull what they need via Actor.LastSent/LastReceived/Memory.
type FilterTransitionsCallback func(transitions []*Transition, state *State, actor *Actor) []*Transition

// ModifyTransitionCallback may replace the transition a State (or a
// not-initiator match) has chosen before it executes.
type ModifyTransitionCallback func(transitions []*Transition, current *Transition, state *State, actor *Actor) *Transition

// State is a node in the grammar graph: an identity, an ordered list of
// outgoing Transitions, and the two callback lists spec.md §3 names.
type State struct {
	ID     protoglot.StateID
	Name   string
	Active bool

	Out []*Transition

	FilterTransitions []FilterTransitionsCallback
	ModifyTransition  []ModifyTransitionCallback
}

// NewState creates an inactive State with no outgoing transitions.
func NewState(id protoglot.StateID, name string) *State {
	return &State{ID: id, Name: name}
}

func (s *State) String() string {
	return fmt.Sprintf("State#%d[%s, %d out]", s.ID, s.Name, len(s.Out))
}

// AddTransition appends t to s's outgoing edges.
func (s *State) AddTransition(t *Transition) {
	s.Out = append(s.Out, t)
}

// applyFilterTransitions runs s's filter_transitions callbacks in
// registration order, each receiving a defensive copy of the list so far
// (spec §4.2 step 1).
func (s *State) applyFilterTransitions(actor *Actor) []*Transition {
	current := append([]*Transition(nil), s.Out...)
	for _, cb := range s.FilterTransitions {
		current = cb(append([]*Transition(nil), current...), s, actor)
	}
	return current
}

func (s *State) applyModifyTransition(candidates []*Transition, t *Transition, actor *Actor) *Transition {
	for _, cb := range s.ModifyTransition {
		t = cb(candidates, t, s, actor)
	}
	return t
}

// Copy deep-copies s's outgoing Transitions and callback lists, giving an
// Actor an isolated mutable view of active flags and callback
// registrations (spec §5) while leaving shared grammar/vocabulary
// structure (Symbols, end-state identities) untouched (property 7: copy
// isolation).
func (s *State) Copy() *State {
	cp := &State{ID: s.ID, Name: s.Name, Active: s.Active}
	cp.Out = make([]*Transition, len(s.Out))
	for i, t := range s.Out {
		cp.Out[i] = t.copy()
	}
	cp.FilterTransitions = append([]FilterTransitionsCallback(nil), s.FilterTransitions...)
	cp.ModifyTransition = append([]ModifyTransitionCallback(nil), s.ModifyTransition...)
	return cp
}
