package grammar

import (
	"github.com/mvossen/protoglot/perr"
	"github.com/mvossen/protoglot/vocab"
)

// pickTransition implements spec §4.2 step 3: a forced (probability==100)
// transition wins outright; otherwise the highest-probability bucket is
// collapsed to and chosen uniformly at random (Open Question in spec §9,
// pinned to "highest bucket only").
func pickTransition(candidates []*Transition, actor *Actor) (*Transition, error) {
	if len(candidates) == 0 {
		return nil, &perr.ConfigurationError{Reason: "no transitions available to choose from"}
	}
	for _, t := range candidates {
		if t.Probability == 100 {
			return t, nil
		}
	}
	best := candidates[0].Probability
	for _, t := range candidates {
		if t.Probability > best {
			best = t.Probability
		}
	}
	var bucket []*Transition
	for _, t := range candidates {
		if t.Probability == best {
			bucket = append(bucket, t)
		}
	}
	if len(bucket) == 1 {
		return bucket[0], nil
	}
	return bucket[actor.rng.Intn(len(bucket))], nil
}

// pickOutputSymbol chooses an index into t.OutputSymbols, by
// OutputProbabilities if given (same bucket rule as pickTransition),
// otherwise uniformly.
func pickOutputSymbol(t *Transition, actor *Actor) (int, error) {
	n := len(t.OutputSymbols)
	if n == 0 {
		return 0, &perr.ConfigurationError{Reason: "transition has no output symbols"}
	}
	if n == 1 {
		return 0, nil
	}
	if len(t.OutputProbabilities) != n {
		return actor.rng.Intn(n), nil
	}
	best := t.OutputProbabilities[0]
	for _, p := range t.OutputProbabilities {
		if p > best {
			best = p
		}
	}
	var bucket []int
	for i, p := range t.OutputProbabilities {
		if p == best {
			bucket = append(bucket, i)
		}
	}
	if len(bucket) == 1 {
		return bucket[0], nil
	}
	return bucket[actor.rng.Intn(len(bucket))], nil
}

func findForced(candidates []*Transition) *Transition {
	for _, t := range candidates {
		if t.Probability == 100 {
			return t
		}
	}
	return nil
}

func soleCloseChannel(candidates []*Transition) *Transition {
	if len(candidates) != 1 || candidates[0].Kind != CloseChannelKind {
		return nil
	}
	return candidates[0]
}

func findEmptySymbolTransition(candidates []*Transition, initiator bool) *Transition {
	for _, t := range candidates {
		if t.Kind == Normal && t.Role(initiator) == RoleReceive && t.InputSymbol != nil && t.InputSymbol.IsEmpty() {
			return t
		}
	}
	return nil
}

// hasReceiveModeNormal reports whether any candidate is a Normal transition
// in receive mode for actor — the condition spec §4.2 step 2 checks before
// dispatching to executeAsNotInitiator ahead of schedule.
func hasReceiveModeNormal(candidates []*Transition, initiator bool) bool {
	for _, t := range candidates {
		if t.Kind == Normal && t.Role(initiator) == RoleReceive {
			return true
		}
	}
	return false
}

func matchSymbol(sym *vocab.Symbol, structure []vocab.FieldResult, candidates []*Transition, initiator bool) *Transition {
	for _, t := range candidates {
		if t.Kind != Normal || t.Role(initiator) != RoleReceive {
			continue
		}
		if t.InputSymbol != sym {
			continue
		}
		if t.InputPreset != nil && !t.InputPreset.Matches(structure) {
			continue
		}
		return t
	}
	return nil
}
