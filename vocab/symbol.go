package vocab

import (
	"fmt"

	"github.com/mvossen/protoglot"
)

// Field is a named subregion of a Symbol holding one Variable subtree (its
// domain).
type Field struct {
	Name     string
	Variable *Variable
}

// NewField creates a Field.
func NewField(name string, v *Variable) Field {
	return Field{Name: name, Variable: v}
}

// Symbol is an ordered list of Fields, plus an optional name. Parsing a
// byte string against a Symbol produces a mapping from each Field to a
// byte slice; the concatenation of slices equals the input, or the input
// is rejected.
type Symbol struct {
	Name   string
	Fields []Field

	// depOrder is the relation dependency order computed once at
	// registration (see dag.go); nil means "not yet compiled", which
	// Parse/Specialize compute lazily and cache.
	depOrder []int
}

// NewSymbol builds a Symbol from an ordered list of Fields.
func NewSymbol(name string, fields ...Field) *Symbol {
	return &Symbol{Name: name, Fields: fields}
}

func (s *Symbol) String() string {
	return fmt.Sprintf("Symbol[%s, %d fields]", s.Name, len(s.Fields))
}

// root returns the Agg of all of a Symbol's field variables, in order —
// the tree Parse/Specialize actually walk.
func (s *Symbol) root() *Variable {
	children := make([]*Variable, len(s.Fields))
	for i, f := range s.Fields {
		children[i] = f.Variable
	}
	return &Variable{kind: AggVar, children: children}
}

// FieldResult is the byte slice assigned to one Field after a successful
// Parse or Specialize, plus the Span of offsets it occupies within the
// full message (the concatenation of every Field's Bytes in order).
type FieldResult struct {
	Field Field
	Bytes []byte
	Span  protoglot.Span
}

// emptySymbol is a singleton: zero bytes, matches only empty input.
var emptySymbol = &Symbol{Name: "<empty>"}

// EmptySymbol returns the shared EmptySymbol: it parses only the empty byte
// string, and specializes to zero bytes.
func EmptySymbol() *Symbol { return emptySymbol }

// IsEmpty reports whether s is the EmptySymbol.
func (s *Symbol) IsEmpty() bool { return s == emptySymbol }

// unknownSymbol is a singleton sentinel: it matches any bytes, but only
// when the catalogue could not match a known Symbol (see layer package).
var unknownSymbol = &Symbol{Name: "<unknown>"}

// UnknownSymbol returns the shared UnknownSymbol sentinel.
func UnknownSymbol() *Symbol { return unknownSymbol }

// IsUnknown reports whether s is the UnknownSymbol sentinel.
func (s *Symbol) IsUnknown() bool { return s == unknownSymbol }
