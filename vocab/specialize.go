package vocab

import (
	"fmt"

	"github.com/mvossen/protoglot"
	"github.com/mvossen/protoglot/perr"
)

// Specialize draws bytes satisfying s's Variable tree and returns both the
// concatenated wire bytes and the per-Field byte mapping (spec §4.1:
// "Symbol.specialize returns the concatenation of per-field byte
// emissions, plus a structured mapping Field → bytes").
//
// Relation leaves are resolved in dependency order before the structural
// walk emits bytes (spec §4.1 "Relation resolution order"): a target that
// comes later in Fields is specialized once, memoized on the Path, and
// re-emitted in place when the structural walk reaches it.
func (s *Symbol) Specialize(opts ...SpecializeOption) ([]byte, []FieldResult, error) {
	if s.IsEmpty() {
		return nil, nil, nil
	}
	if err := s.compile(); err != nil {
		return nil, nil, err
	}
	var memOpt MemoryStore
	path := NewSpecializingPath(memOpt, opts...)

	// Pre-pass: resolve every Data and Relation leaf in dependency order
	// (each Relation after its target), so later structural emission can
	// just read back the memoized bytes.
	order := s.depOrderVariables()
	for _, v := range order {
		if _, err := resolveSpecialize(v, path); err != nil {
			return nil, nil, err
		}
	}

	results := make([]FieldResult, len(s.Fields))
	offset := 0
	for i, f := range s.Fields {
		b, err := resolveSpecialize(f.Variable, path)
		if err != nil {
			return nil, nil, err
		}
		path.append(b)
		results[i] = FieldResult{Field: f, Bytes: b, Span: protoglot.Span{offset, offset + len(b)}}
		offset += len(b)
	}
	return path.Produced, results, nil
}

// depOrderVariables rebuilds the *Variable pointers for s.depOrder's cached
// VarID sequence. Field.Variable pointers are stable across calls to
// s.root(), so a fresh leaf set always contains the same identities.
func (s *Symbol) depOrderVariables() []*Variable {
	if len(s.depOrder) == 0 {
		return nil
	}
	byID := make(map[int]*Variable)
	var collect func(v *Variable)
	collect = func(v *Variable) {
		byID[int(v.id)] = v
		for _, c := range v.Children() {
			collect(c)
		}
	}
	for _, f := range s.Fields {
		collect(f.Variable)
	}
	out := make([]*Variable, 0, len(s.depOrder))
	for _, id := range s.depOrder {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out
}

// resolveSpecialize returns v's bytes on path, computing and memoizing them
// on first use. Safe to call more than once for the same v on the same
// path: subsequent calls are a cache hit (this is what lets a Relation's
// target be specialized once during the dependency pre-pass and reused
// during the structural walk).
func resolveSpecialize(v *Variable, path *SpecializingPath) ([]byte, error) {
	if path.HasData(v) {
		return path.GetData(v), nil
	}
	b, err := specializeCore(v, path)
	if err != nil {
		return nil, err
	}
	path.AssignData(v, b)
	return b, nil
}

func specializeCore(v *Variable, path *SpecializingPath) ([]byte, error) {
	switch v.kind {
	case DataVar:
		return specializeData(v, path)
	case RelationVar:
		return specializeRelation(v, path)
	case AggVar:
		return specializeAgg(v, path)
	case AltVar:
		return specializeAlt(v, path)
	case RepeatVar:
		return specializeRepeat(v, path)
	}
	return nil, &perr.ConfigurationError{Reason: fmt.Sprintf("unknown variable kind %v", v.kind)}
}

func specializeData(v *Variable, path *SpecializingPath) ([]byte, error) {
	if v.preset != nil {
		return v.preset, nil
	}
	return drawData(v.dataType, path.rng)
}

func specializeRelation(v *Variable, path *SpecializingPath) ([]byte, error) {
	target := v.relation.Target
	targetBytes, err := resolveSpecialize(target, path)
	if err != nil {
		return nil, err
	}
	return v.relation.derive(targetBytes, v.dataType)
}

func specializeAgg(v *Variable, path *SpecializingPath) ([]byte, error) {
	var out []byte
	for _, c := range v.children {
		b, err := resolveSpecialize(c, path)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func specializeAlt(v *Variable, path *SpecializingPath) ([]byte, error) {
	if len(v.children) == 0 {
		return nil, &perr.ConfigurationError{Reason: "Alt with no children"}
	}
	idx := 0
	switch {
	case v.altCbk != nil:
		idx = v.altCbk(path, v.children)
		if idx < 0 {
			idx = len(v.children) + idx
		}
		if idx < 0 || idx >= len(v.children) {
			return nil, &perr.ConfigurationError{Reason: "Alt callback returned out-of-range index"}
		}
	default:
		idx = path.rng.Intn(len(v.children))
	}
	return resolveSpecialize(v.children[idx], path)
}

func specializeRepeat(v *Variable, path *SpecializingPath) ([]byte, error) {
	lo, hi := v.repeatRange.Min, v.repeatRange.Max
	if hi < lo {
		return nil, &perr.ConfigurationError{Reason: "Repeat with max < min"}
	}
	count := lo
	if hi > lo {
		count = lo + path.rng.Intn(hi-lo+1)
	}
	var out []byte
	for i := 0; i < count; i++ {
		if i > 0 && v.repeatSep != nil {
			sep, err := specializeCore(v.repeatSep.Variable, path)
			if err != nil {
				return nil, err
			}
			out = append(out, sep...)
		}
		// Each iteration re-specializes the shared child Variable; the
		// child's Path assignment reflects only the final iteration, so a
		// Relation targeting a Repeat's child sees the last repetition's
		// bytes.
		b, err := specializeCore(v.repeatChild, path)
		if err != nil {
			return nil, err
		}
		path.AssignData(v.repeatChild, b)
		out = append(out, b...)
	}
	return out, nil
}
