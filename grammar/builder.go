package grammar

import (
	"github.com/mvossen/protoglot"
	"github.com/mvossen/protoglot/perr"
	"github.com/mvossen/protoglot/vocab"
)

// Automaton is the finished, immutable grammar graph (spec §5: "the
// grammar graph... immutable during actor execution").
type Automaton struct {
	Name    string
	Initial *State
	States  []*State
}

// GrammarBuilder assembles an Automaton with a fluent API, grounded on the
// teacher's lr.GrammarBuilder ("b.LHS(...).N(...).T(...).End()" chains) —
// here adapted from context-free-grammar rules to States joined by typed
// Transitions.
type GrammarBuilder struct {
	name       string
	states     []*State
	nextState  protoglot.StateID
	nextTrans  protoglot.TransitionID
	byName     map[string]*State
}

// NewGrammarBuilder starts a new builder named name (for diagnostics only).
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{name: name, byName: make(map[string]*State), nextState: 1, nextTrans: 1}
}

// State returns the State named name, creating it on first reference.
func (b *GrammarBuilder) State(name string) *State {
	if s, ok := b.byName[name]; ok {
		return s
	}
	s := NewState(b.nextState, name)
	b.nextState++
	b.byName[name] = s
	b.states = append(b.states, s)
	return s
}

// Normal adds a Normal transition from start to end and returns it for
// further configuration (WithProbability, WithInverseInitiator,
// WithActionCallback).
func (b *GrammarBuilder) Normal(start, end *State, input *vocab.Symbol, outputs ...*vocab.Symbol) *Transition {
	t := NewNormalTransition(b.nextTrans, start, end, input, outputs)
	b.nextTrans++
	start.AddTransition(t)
	return t
}

// OpenChannel adds an OpenChannel transition from start to end.
func (b *GrammarBuilder) OpenChannel(start, end *State) *Transition {
	t := NewOpenChannelTransition(b.nextTrans, start, end)
	b.nextTrans++
	start.AddTransition(t)
	return t
}

// CloseChannel adds a CloseChannel transition from start to end.
func (b *GrammarBuilder) CloseChannel(start, end *State) *Transition {
	t := NewCloseChannelTransition(b.nextTrans, start, end)
	b.nextTrans++
	start.AddTransition(t)
	return t
}

// WithProbability sets t's selection weight and returns t for chaining.
func (t *Transition) WithProbability(p int) *Transition {
	t.Probability = p
	return t
}

// WithInverseInitiator marks t as running in the opposite role from the
// default (spec §4.2 role table) and returns t for chaining.
func (t *Transition) WithInverseInitiator() *Transition {
	t.InverseInitiator = true
	return t
}

// WithActionCallback appends cb to t's action callback list.
func (t *Transition) WithActionCallback(cb ActionCallback) *Transition {
	t.ActionCallbacks = append(t.ActionCallbacks, cb)
	return t
}

// Build finalizes the Automaton rooted at initial. Returns a
// ConfigurationError if more than one transition out of any single State
// is forced (probability == 100), per spec.md §3's invariant "at most one
// forced transition per state".
func (b *GrammarBuilder) Build(initial *State) (*Automaton, error) {
	for _, s := range b.states {
		forced := 0
		for _, t := range s.Out {
			if t.Probability == 100 {
				forced++
			}
		}
		if forced > 1 {
			return nil, &perr.ConfigurationError{Reason: "state " + s.Name + " has more than one forced transition"}
		}
	}
	return &Automaton{Name: b.name, Initial: initial, States: b.states}, nil
}
