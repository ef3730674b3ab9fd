package grammar

import (
	"fmt"

	"github.com/mvossen/protoglot"
	"github.com/mvossen/protoglot/memory"
	"github.com/mvossen/protoglot/vocab"
)

// TransitionKind tags which alternative of the Transition sum type a value
// is (spec §3: "represent as a tagged variant, not by inheritance").
type TransitionKind uint8

const (
	Normal TransitionKind = iota
	OpenChannelKind
	CloseChannelKind
)

func (k TransitionKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case OpenChannelKind:
		return "OpenChannel"
	case CloseChannelKind:
		return "CloseChannel"
	}
	return "?"
}

// Role is which side of a Normal transition an Actor plays: the one that
// specializes and sends, or the one that blocks for input.
type Role uint8

const (
	RoleSend Role = iota
	RoleReceive
)

// ActionTag distinguishes the two points in a Normal transition's execution
// where action callbacks run (spec §4.2: "tag SPECIALIZE after send and
// ABSTRACT after the received symbol is parsed").
type ActionTag uint8

const (
	ActionSpecialize ActionTag = iota
	ActionAbstract
)

// ActionCallback observes a Symbol's bytes/structure at a SPECIALIZE or
// ABSTRACT point during transition execution.
type ActionCallback func(sym *vocab.Symbol, structure []vocab.FieldResult, tag ActionTag, state *State, mem *memory.Memory)

// Transition is the grammar engine's sum type: Normal, OpenChannel, or
// CloseChannel, discriminated by Kind. Only Normal fields are meaningful
// when Kind == Normal.
type Transition struct {
	ID    protoglot.TransitionID
	Kind  TransitionKind
	Start *State
	End   *State

	// Normal-only fields.
	InputSymbol         *vocab.Symbol
	OutputSymbols       []*vocab.Symbol
	OutputProbabilities []int // parallel to OutputSymbols; nil means uniform
	InputPreset         *vocab.Preset
	OutputPresets       []*vocab.Preset // parallel to OutputSymbols; nil entries allowed
	Probability         int             // 0..100; 100 is forced (spec §3)
	InverseInitiator    bool
	ActionCallbacks     []ActionCallback
}

// NewNormalTransition creates a Normal transition between start and end.
func NewNormalTransition(id protoglot.TransitionID, start, end *State, input *vocab.Symbol, outputs []*vocab.Symbol) *Transition {
	return &Transition{ID: id, Kind: Normal, Start: start, End: end, InputSymbol: input, OutputSymbols: outputs, Probability: 50}
}

// NewOpenChannelTransition creates an OpenChannel transition.
func NewOpenChannelTransition(id protoglot.TransitionID, start, end *State) *Transition {
	return &Transition{ID: id, Kind: OpenChannelKind, Start: start, End: end}
}

// NewCloseChannelTransition creates a CloseChannel transition.
func NewCloseChannelTransition(id protoglot.TransitionID, start, end *State) *Transition {
	return &Transition{ID: id, Kind: CloseChannelKind, Start: start, End: end}
}

func (t *Transition) String() string {
	return fmt.Sprintf("Transition#%d[%s, %s -> %s]", t.ID, t.Kind, t.Start.Name, t.End.Name)
}

// Role reports which side of the dialogue an actor plays for t, given its
// initiator flag (spec §4.2 role table). OpenChannel/CloseChannel execute
// identically regardless of role, so they report RoleSend: the acting
// Actor always performs the channel operation directly rather than
// awaiting a peer message.
func (t *Transition) Role(initiator bool) Role {
	if t.Kind != Normal {
		return RoleSend
	}
	if initiator != t.InverseInitiator {
		return RoleSend
	}
	return RoleReceive
}

func (t *Transition) copy() *Transition {
	cp := *t
	cp.ActionCallbacks = append([]ActionCallback(nil), t.ActionCallbacks...)
	cp.OutputSymbols = append([]*vocab.Symbol(nil), t.OutputSymbols...)
	return &cp
}
