package vocab

import (
	"sort"

	"github.com/mvossen/protoglot"
	"github.com/mvossen/protoglot/perr"
)

// collectLeaves walks a Variable tree pre-order and returns its Data and
// Relation leaves — the structural leaves and the relation leaves that
// derive from them (spec §3: "relation leaves form a DAG over structural
// leaves"). Agg and Alt nodes contribute their children's leaves; Repeat
// contributes its child's (and delimiter's, if any) leaves once, since a
// relation over a Repeat's byte count targets the repetition as a whole,
// not a particular iteration.
func collectLeaves(root *Variable) []*Variable {
	var leaves []*Variable
	var walk func(v *Variable)
	walk = func(v *Variable) {
		switch v.kind {
		case DataVar, RelationVar:
			leaves = append(leaves, v)
		case AggVar, AltVar:
			for _, c := range v.children {
				walk(c)
			}
		case RepeatVar:
			walk(v.repeatChild)
			if v.repeatSep != nil {
				walk(v.repeatSep.Variable)
			}
		}
	}
	walk(root)
	return leaves
}

// relationOrder computes a topological order over root's leaves in which
// every Relation leaf follows its target, using a stable Kahn's algorithm
// (ties broken by original structural position, so unrelated leaves keep
// their natural left-to-right order). Returns a ConfigurationError if the
// relations form a cycle — caught at Symbol compile time, never during a
// running specialize (spec §9 design note).
func relationOrder(root *Variable) ([]*Variable, error) {
	leaves := collectLeaves(root)
	index := make(map[protoglot.VarID]int, len(leaves))
	byID := make(map[protoglot.VarID]*Variable, len(leaves))
	for i, l := range leaves {
		index[l.id] = i
		byID[l.id] = l
	}

	indeg := make(map[protoglot.VarID]int, len(leaves))
	adj := make(map[protoglot.VarID][]protoglot.VarID)
	for _, l := range leaves {
		indeg[l.id] = 0
	}
	for _, l := range leaves {
		if l.kind != RelationVar {
			continue
		}
		target := l.relation.Target
		if _, ok := index[target.id]; !ok {
			// Target is not one of the collected leaves: it lives outside
			// this tree (e.g. resolved via Memory from a prior message) or
			// it is an Agg/Alt/Repeat node. No ordering edge is recorded.
			continue
		}
		adj[target.id] = append(adj[target.id], l.id)
		indeg[l.id]++
	}

	var ready []protoglot.VarID
	for _, l := range leaves {
		if indeg[l.id] == 0 {
			ready = append(ready, l.id)
		}
	}

	var order []protoglot.VarID
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return index[ready[i]] < index[ready[j]] })
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		for _, dep := range adj[id] {
			indeg[dep]--
			if indeg[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if len(order) != len(leaves) {
		return nil, &perr.ConfigurationError{Reason: "relation dependency cycle in " + "symbol vocabulary"}
	}

	result := make([]*Variable, len(order))
	for i, id := range order {
		result[i] = byID[id]
	}
	return result, nil
}

// compile computes and caches the relation order for s, returning a
// ConfigurationError if the relations are cyclic. Safe to call more than
// once; repeat calls are no-ops once depOrder is set. Catalogues call this
// at registration time so cycles are reported at startup, not mid-run.
func (s *Symbol) compile() error {
	if s.depOrder != nil {
		return nil
	}
	order, err := relationOrder(s.root())
	if err != nil {
		return err
	}
	// s.root() rebuilds its wrapping Agg node on every call but reuses the
	// same Field.Variable pointers, so caching the VarID sequence (rather
	// than the *Variable pointers themselves) is stable across calls.
	ids := make([]int, len(order))
	for i, v := range order {
		ids[i] = int(v.id)
	}
	s.depOrder = ids
	return nil
}
