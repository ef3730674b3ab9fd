package vocab

import (
	"bytes"

	"github.com/mvossen/protoglot"
	"github.com/mvossen/protoglot/perr"
)

// Parse matches input against s and returns the per-Field byte mapping, or
// a SymbolRejectedError if no continuation consumes the entire input (spec
// §4.1: "A Symbol parses successfully iff there exists a continuation that
// consumes the entire input. If multiple continuations exist, the first in
// emission order wins").
func (s *Symbol) Parse(input []byte, opts ...ParseOption) ([]FieldResult, error) {
	if s.IsEmpty() {
		if len(input) == 0 {
			return nil, nil
		}
		return nil, &perr.SymbolRejectedError{Bytes: input}
	}
	if err := s.compile(); err != nil {
		return nil, err
	}
	var mem MemoryStore
	for _, o := range opts {
		mem = o(mem)
	}
	root := s.root()
	path := NewParsingPath(input, mem)
	for _, cont := range parseVariable(root, path) {
		if len(cont.Remaining) == 0 {
			return fieldResultsFrom(s, cont), nil
		}
	}
	return nil, &perr.SymbolRejectedError{Bytes: input}
}

// ParseOption configures a Parse call.
type ParseOption func(MemoryStore) MemoryStore

// WithParseMemory attaches the Actor-scoped scratchpad relation leaves
// should consult while parsing (e.g. bytes observed in a prior message).
func WithParseMemory(mem MemoryStore) ParseOption {
	return func(MemoryStore) MemoryStore { return mem }
}

// fieldResultsFrom builds the per-Field result list, each carrying the
// Span of offsets it occupies in the input: Fields are consumed strictly
// in order with no gaps (root is an Agg walked left to right), so the
// running offset is just the sum of preceding Fields' byte lengths.
func fieldResultsFrom(s *Symbol, final *ParsingPath) []FieldResult {
	out := make([]FieldResult, len(s.Fields))
	offset := 0
	for i, f := range s.Fields {
		b := final.GetData(f.Variable)
		out[i] = FieldResult{Field: f, Bytes: b, Span: protoglot.Span{offset, offset + len(b)}}
		offset += len(b)
	}
	return out
}

// parseVariable returns every continuation Path resulting from matching v
// against path.Remaining, in emission order. An empty return means v
// rejects this path outright.
func parseVariable(v *Variable, path *ParsingPath) []*ParsingPath {
	switch v.kind {
	case DataVar:
		return parseData(v, path)
	case RelationVar:
		return parseRelation(v, path)
	case AggVar:
		return parseAggNode(v, path)
	case AltVar:
		return parseAlt(v, path)
	case RepeatVar:
		return parseRepeat(v, path)
	}
	return nil
}

func parseData(v *Variable, path *ParsingPath) []*ParsingPath {
	if v.preset != nil {
		if bytes.HasPrefix(path.Remaining, v.preset) {
			next := path.consume(len(v.preset))
			next.AssignData(v, v.preset)
			return []*ParsingPath{next}
		}
		return nil
	}
	widths := candidateLengths(v.dataType, len(path.Remaining))
	var out []*ParsingPath
	for _, n := range widths {
		if n > len(path.Remaining) {
			continue
		}
		candidate := path.Remaining[:n]
		if !validateData(v.dataType, candidate) {
			continue
		}
		next := path.consume(n)
		next.AssignData(v, candidate)
		out = append(out, next)
	}
	return out
}

// candidateLengths enumerates candidate byte lengths for a Data leaf,
// longest-first, bounded by both the type's Range and the bytes actually
// available.
func candidateLengths(t DataType, available int) []int {
	width := t.byteWidth()
	if width == 0 {
		width = 1
	}
	maxElems := t.Range.Max
	if maxElems*width > available {
		maxElems = available / width
	}
	minElems := t.Range.Min
	if maxElems < minElems {
		return nil
	}
	out := make([]int, 0, maxElems-minElems+1)
	for n := maxElems; n >= minElems; n-- {
		out = append(out, n*width)
	}
	return out
}

func validateData(t DataType, b []byte) bool {
	switch t.Kind {
	case String:
		if t.Charset == "" {
			return true
		}
		for _, c := range b {
			if !bytes.ContainsRune([]byte(t.Charset), rune(c)) {
				return false
			}
		}
		return true
	case Raw, BitArray, Integer:
		return true
	}
	return false
}

func parseRelation(v *Variable, path *ParsingPath) []*ParsingPath {
	expected, err := expectedRelationBytes(v, path)
	if err != nil {
		return nil
	}
	if !bytes.HasPrefix(path.Remaining, expected) {
		return nil
	}
	next := path.consume(len(expected))
	next.AssignData(v, expected)
	next.Memory().Set(v.id, expected)
	return []*ParsingPath{next}
}

// expectedRelationBytes computes the bytes a Relation leaf expects to see
// next, from whatever its target has already produced on this path (or, if
// the target isn't part of this parse, from Memory).
func expectedRelationBytes(v *Variable, path *ParsingPath) ([]byte, error) {
	target := v.relation.Target
	var targetBytes []byte
	if path.HasData(target) {
		targetBytes = path.GetData(target)
	} else if b, ok := path.Memory().Get(target.id); ok {
		targetBytes = b
	} else {
		return nil, &perr.ConfigurationError{Reason: "relation target not yet resolved during parse"}
	}
	return v.relation.derive(targetBytes, v.dataType)
}

// parseAggNode wraps parseAgg to also assign the consumed span to v
// itself, the same convention parseAlt/parseRepeat use for their nodes:
// a Field whose top Variable is an Agg must be able to read back its own
// bytes via GetData(v), not just its children's.
func parseAggNode(v *Variable, path *ParsingPath) []*ParsingPath {
	start := path.Remaining
	var out []*ParsingPath
	for _, cont := range parseAgg(v.children, path) {
		consumed := start[:len(start)-len(cont.Remaining)]
		cont.AssignData(v, consumed)
		out = append(out, cont)
	}
	return out
}

func parseAgg(children []*Variable, path *ParsingPath) []*ParsingPath {
	if len(children) == 0 {
		return []*ParsingPath{path}
	}
	heads := parseVariable(children[0], path)
	if len(heads) == 0 {
		return nil
	}
	var out []*ParsingPath
	for _, h := range heads {
		out = append(out, parseAgg(children[1:], h)...)
	}
	return out
}

func parseAlt(v *Variable, path *ParsingPath) []*ParsingPath {
	var out []*ParsingPath
	for _, c := range v.children {
		branch := path.Duplicate().(*ParsingPath)
		for _, cont := range parseVariable(c, branch) {
			consumed := branch.Remaining[:len(branch.Remaining)-len(cont.Remaining)]
			cont.AssignData(v, consumed)
			out = append(out, cont)
		}
	}
	return out
}

func parseRepeat(v *Variable, path *ParsingPath) []*ParsingPath {
	type state struct {
		p     *ParsingPath
		count int
	}
	start := path.Remaining
	frontier := []state{{p: path, count: 0}}
	var complete []state
	for len(frontier) > 0 {
		var next []state
		for _, st := range frontier {
			if st.count >= v.repeatRange.Min {
				complete = append(complete, st)
			}
			if st.count >= v.repeatRange.Max {
				continue
			}
			p := st.p
			if st.count > 0 && v.repeatSep != nil {
				seps := parseVariable(v.repeatSep.Variable, p)
				if len(seps) == 0 {
					continue
				}
				p = seps[0]
			}
			for _, cont := range parseVariable(v.repeatChild, p) {
				next = append(next, state{p: cont, count: st.count + 1})
			}
		}
		frontier = next
	}
	// Longest-match first (greedy), matching Repeat's default emission
	// order (spec §4.1). Each continuation is assigned the span it consumed
	// as v's own bytes, the same convention parseAlt uses for its node.
	out := make([]*ParsingPath, 0, len(complete))
	for i := len(complete) - 1; i >= 0; i-- {
		st := complete[i]
		consumed := start[:len(start)-len(st.p.Remaining)]
		st.p.AssignData(v, consumed)
		out = append(out, st.p)
	}
	return out
}
