package grammar

import (
	"golang.org/x/exp/slices"

	"github.com/mvossen/protoglot/perr"
	"github.com/mvossen/protoglot/vocab"
)

// Execute implements spec §4.2 "State.execute(actor)". A stopped Actor
// (Stop called since the previous State) never starts another transition,
// channel operation included: the check happens here, once, rather than
// scattered across every dispatch branch below.
func (s *State) Execute(actor *Actor) (*State, error) {
	if actor.stopped {
		return nil, &perr.ActorStopError{}
	}
	candidates := s.applyFilterTransitions(actor)

	if actor.Layer.CheckReceived() && hasReceiveModeNormal(candidates, actor.Initiator) {
		return executeAsNotInitiator(s, candidates, actor)
	}

	t, err := pickTransition(candidates, actor)
	if err != nil {
		return nil, err
	}
	if t.Role(actor.Initiator) == RoleReceive {
		return executeAsNotInitiator(s, candidates, actor)
	}
	return executeAsInitiator(s, candidates, t, actor)
}

// executeAsInitiator implements spec §4.2 "executeAsInitiator": apply
// modify_transition, then run the chosen transition's initiator branch.
func executeAsInitiator(s *State, candidates []*Transition, t *Transition, actor *Actor) (*State, error) {
	t = s.applyModifyTransition(candidates, t, actor)

	switch t.Kind {
	case OpenChannelKind, CloseChannelKind:
		return executeChannelOp(t, actor)
	case Normal:
		return executeNormalAsInitiator(s, t, actor)
	}
	return nil, &perr.ConfigurationError{Reason: "unknown transition kind"}
}

func executeNormalAsInitiator(s *State, t *Transition, actor *Actor) (*State, error) {
	sentRaw, sentStruct, err := actor.Layer.WriteSymbol(t.InputSymbol, t.InputPreset)
	if err != nil {
		return nil, err
	}
	actor.recordSent(t.InputSymbol, sentRaw, sentStruct)
	actor.runActionCallbacks(t, t.InputSymbol, sentStruct, ActionSpecialize, s)

	sym, raw, structure, err := actor.Layer.ReadSymbol(actor.ReadTimeout)
	if err != nil {
		return nil, err
	}
	actor.recordReceived(sym, raw, structure)

	matched := slices.Contains(t.OutputSymbols, sym)
	if !matched {
		if actor.CbkReadUnexpectedSymbol != nil {
			if next := actor.CbkReadUnexpectedSymbol(s, t, sym, raw, structure); next != nil {
				return next, nil
			}
		}
		return nil, &perr.UnexpectedSymbolError{State: s.Name, Symbol: sym.Name}
	}
	actor.runActionCallbacks(t, sym, structure, ActionAbstract, s)
	return t.End, nil
}

// executeChannelOp runs an OpenChannel/CloseChannel transition (spec §4.2:
// "errors re-raised after clearing active flags").
func executeChannelOp(t *Transition, actor *Actor) (*State, error) {
	switch t.Kind {
	case OpenChannelKind:
		if err := actor.Layer.OpenChannel(); err != nil {
			t.Start.Active = false
			t.End.Active = false
			return nil, err
		}
		t.Start.Active = true
		t.End.Active = true
	case CloseChannelKind:
		if err := actor.Layer.CloseChannel(); err != nil {
			t.Start.Active = false
			t.End.Active = false
			return nil, err
		}
		t.Start.Active = false
		t.End.Active = false
	}
	return t.End, nil
}

// executeAsNotInitiator implements spec §4.2 "executeAsNotInitiator".
func executeAsNotInitiator(s *State, candidates []*Transition, actor *Actor) (*State, error) {
	if forced := findForced(candidates); forced != nil && forced.Kind != Normal {
		return executeChannelOp(forced, actor)
	}
	if only := soleCloseChannel(candidates); only != nil {
		return executeChannelOp(only, actor)
	}

	sym, raw, structure, err := actor.Layer.ReadSymbol(actor.ReadTimeout)
	if err != nil {
		return handleReadError(s, candidates, actor, err)
	}
	actor.recordReceived(sym, raw, structure)

	match := matchSymbol(sym, structure, candidates, actor.Initiator)
	if match == nil {
		return handleUnmatchedSymbol(s, sym, raw, structure, actor)
	}
	match = s.applyModifyTransition(candidates, match, actor)
	actor.runActionCallbacks(match, sym, structure, ActionAbstract, s)

	idx, err := pickOutputSymbol(match, actor)
	if err != nil {
		return nil, err
	}
	outSym := match.OutputSymbols[idx]
	var preset *vocab.Preset
	if idx < len(match.OutputPresets) {
		preset = match.OutputPresets[idx]
	}

	sentRaw, sentStruct, err := actor.Layer.WriteSymbol(outSym, preset)
	if err != nil {
		return nil, err
	}
	actor.recordSent(outSym, sentRaw, sentStruct)
	actor.runActionCallbacks(match, outSym, sentStruct, ActionSpecialize, s)
	return match.End, nil
}

// handleReadError implements spec §4.2 executeAsNotInitiator steps 4/6
// (timeout handling).
func handleReadError(s *State, candidates []*Transition, actor *Actor, err error) (*State, error) {
	if _, ok := err.(*perr.TimeoutError); ok {
		if empty := findEmptySymbolTransition(candidates, actor.Initiator); empty != nil {
			return empty.End, nil
		}
		if actor.CbkReadSymbolTimeout != nil {
			if next := actor.CbkReadSymbolTimeout(s, nil); next != nil {
				return next, nil
			}
		}
		return nil, &perr.ActorStopError{}
	}
	return nil, err
}

// handleUnmatchedSymbol implements spec §4.2 executeAsNotInitiator step 6:
// a received symbol matched no candidate transition.
func handleUnmatchedSymbol(s *State, sym *vocab.Symbol, raw []byte, structure []vocab.FieldResult, actor *Actor) (*State, error) {
	if sym.IsUnknown() {
		if actor.CbkReadUnknownSymbol != nil {
			if next := actor.CbkReadUnknownSymbol(s, nil, raw); next != nil {
				return next, nil
			}
			return nil, &perr.ActorStopError{}
		}
		return nil, &perr.SymbolRejectedError{Bytes: raw}
	}
	if actor.CbkReadUnexpectedSymbol != nil {
		if next := actor.CbkReadUnexpectedSymbol(s, nil, sym, raw, structure); next != nil {
			return next, nil
		}
		return nil, &perr.ActorStopError{}
	}
	return nil, &perr.UnexpectedSymbolError{State: s.Name, Symbol: sym.Name}
}
