package protoglot

import "fmt"

// VarID identifies a Variable stably across the lifetime of a Catalogue.
// Variable identity is by ID, not by structural equality: the same
// Variable may appear in multiple relations but occupies exactly one
// structural position in a Symbol tree (see spec invariant on Variable
// identity).
type VarID uint64

// StateID identifies a State within an Automaton.
type StateID uint64

// TransitionID identifies a Transition within an Automaton.
type TransitionID uint64

// Span captures a run of bytes within a parsed or specialized message: a
// start offset and the offset just behind the end, the way a parse tree
// node tracks which input positions it covers.
type Span [2]int // (x…y)

// From returns the start offset of a span.
func (s Span) From() int { return s[0] }

// To returns the end offset of a span.
func (s Span) To() int { return s[1] }

// Len returns the length of (x…y).
func (s Span) Len() int { return s[1] - s[0] }

// IsNull returns true for the zero span.
func (s Span) IsNull() bool { return s == Span{} }

// Extend grows s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
