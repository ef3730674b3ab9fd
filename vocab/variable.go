package vocab

import (
	"fmt"

	"github.com/mvossen/protoglot"
	"github.com/mvossen/protoglot/bitio"
)

// VariableKind tags which alternative of the Variable sum type a value is.
// Represented as a tagged variant rather than an interface hierarchy, so
// role selection in Parse/Specialize is plain pattern matching (switch),
// mirroring how the grammar engine dispatches on TransitionKind.
type VariableKind uint8

const (
	DataVar VariableKind = iota
	RelationVar
	AggVar
	AltVar
	RepeatVar
)

// AltCallback picks a child index for an Alt node during specialize, given
// the Alt's children; a negative return wraps from the end (-1 = last),
// matching spec property 3 (Alt determinism).
type AltCallback func(path Path, children []*Variable) int

// RepeatDelimiter optionally separates repetitions of a Repeat node's
// child.
type RepeatDelimiter struct {
	Variable *Variable
}

var nextVarID protoglot.VarID = 1

func allocID() protoglot.VarID {
	id := nextVarID
	nextVarID++
	return id
}

// Variable is the vocabulary engine's sum type: a leaf (Data or Relation)
// or a node (Agg, Alt, Repeat). Every Variable has a stable ID, assigned at
// construction, used as the key into Path assignments and Memory so that
// the same Variable may appear in several relations while occupying
// exactly one structural position in a Symbol tree.
type Variable struct {
	id   protoglot.VarID
	kind VariableKind
	name string // optional, for debugging/Dump

	dataType DataType // DataVar
	preset   []byte   // DataVar: fixed value, if any (pinned by a preset)

	relation *Relation // RelationVar

	children []*Variable // AggVar, AltVar
	altCbk   AltCallback // AltVar, optional

	repeatChild *Variable        // RepeatVar
	repeatRange Range            // RepeatVar: bounds on repetition count
	repeatSep   *RepeatDelimiter // RepeatVar, optional
}

// ID returns the Variable's stable identity.
func (v *Variable) ID() protoglot.VarID { return v.id }

// Kind returns which alternative of the sum type v is.
func (v *Variable) Kind() VariableKind { return v.kind }

// Name returns the debug name given at construction, if any.
func (v *Variable) Name() string { return v.name }

// NewData creates a Data leaf of the given type.
func NewData(t DataType) *Variable {
	return &Variable{id: allocID(), kind: DataVar, dataType: t}
}

// RawConst is a convenience constructor for a fixed-value Raw leaf — the
// common case of a literal byte/string constant in a Symbol, e.g. a magic
// number or protocol marker.
func RawConst(value string) *Variable {
	b := []byte(value)
	v := NewData(DataType{Kind: Raw, Range: Fixed(len(b))})
	v.preset = b
	return v
}

// NewInteger creates an Integer Data leaf of the given bit width,
// endianness and signedness, accepting exactly one element.
func NewInteger(bits int, end bitio.Endianness, signed bool) *Variable {
	return NewData(DataType{Kind: Integer, UnitSize: bits, Endian: end, Signed: signed, Range: Fixed(1)})
}

// NewRelation creates a Relation leaf deriving its value from target.
func NewRelation(target *Variable, kind RelationKind, resultType DataType) *Variable {
	return &Variable{
		id:       allocID(),
		kind:     RelationVar,
		dataType: resultType,
		relation: &Relation{Target: target, Kind: kind},
	}
}

// NewAgg creates a sequence node: parse/specialize run over children
// left-to-right.
func NewAgg(children ...*Variable) *Variable {
	return &Variable{id: allocID(), kind: AggVar, children: children}
}

// NewAlt creates a choice node over children. Without a callback (see
// WithAltCallback), specialize chooses uniformly at random; parse always
// tries children in registration order.
func NewAlt(children ...*Variable) *Variable {
	return &Variable{id: allocID(), kind: AltVar, children: children}
}

// WithAltCallback attaches a deterministic child-selection callback to an
// Alt node (for specialize only; parse still tries every child in order).
func (v *Variable) WithAltCallback(cbk AltCallback) *Variable {
	if v.kind != AltVar {
		panic("WithAltCallback: not an Alt variable")
	}
	v.altCbk = cbk
	return v
}

// NewRepeat creates a repetition node: child repeated bounds.Min..bounds.Max
// times, optionally separated by sep.
func NewRepeat(child *Variable, bounds Range, sep *RepeatDelimiter) *Variable {
	return &Variable{
		id:          allocID(),
		kind:        RepeatVar,
		repeatChild: child,
		repeatRange: bounds,
		repeatSep:   sep,
	}
}

// Named attaches a debug name to v and returns v, for chaining at
// construction time.
func (v *Variable) Named(name string) *Variable {
	v.name = name
	return v
}

func (v *Variable) String() string {
	if v.name != "" {
		return fmt.Sprintf("%s#%d[%s]", v.name, v.id, v.kind)
	}
	return fmt.Sprintf("var#%d[%s]", v.id, v.kind)
}

func (k VariableKind) String() string {
	switch k {
	case DataVar:
		return "Data"
	case RelationVar:
		return "Relation"
	case AggVar:
		return "Agg"
	case AltVar:
		return "Alt"
	case RepeatVar:
		return "Repeat"
	}
	return "?"
}

// Children returns the structural children of v (Agg/Alt), or the single
// child of a Repeat wrapped in a slice, or nil for leaves.
func (v *Variable) Children() []*Variable {
	switch v.kind {
	case AggVar, AltVar:
		return v.children
	case RepeatVar:
		return []*Variable{v.repeatChild}
	}
	return nil
}
