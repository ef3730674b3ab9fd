package vocab

import (
	"github.com/mvossen/protoglot"
)

// MemoryStore is the subset of memory.Memory the vocabulary engine needs:
// last-observed bytes per Variable, consulted and updated by Relation
// leaves. Declared here (rather than imported) so vocab never depends on
// package memory — any type satisfying this interface structurally works,
// which is how memory.Memory is wired in without an import cycle.
type MemoryStore interface {
	Get(id protoglot.VarID) ([]byte, bool)
	Set(id protoglot.VarID, b []byte)
}

// Assignment pairs a Variable with the bytes a parse/specialize run
// produced for it, in the order results were appended.
type Assignment struct {
	Variable *Variable
	Bytes    []byte
}

// Path is the transient per-call state carried through a parse or
// specialize walk of a Symbol's Variable tree. Both ParsingPath and
// SpecializingPath implement it; their only difference is what
// buffer/accumulator they additionally carry (see concrete types below).
type Path interface {
	// HasData reports whether v already has an assignment on this path.
	HasData(v *Variable) bool
	// GetData returns the bytes assigned to v on this path, or nil.
	GetData(v *Variable) []byte
	// AssignData records b as the bytes assigned to v on this path.
	AssignData(v *Variable, b []byte)
	// AddResult appends (v, b) to the ordered result list.
	AddResult(v *Variable, b []byte)
	// Results returns the ordered (Variable, bytes) results appended so
	// far.
	Results() []Assignment
	// Duplicate deep-copies the assignments/results map while keeping
	// Variable keys (identity-based) stable, for Alt/backtracking
	// branches.
	Duplicate() Path
	// Memory returns the Actor-scoped scratchpad relation leaves consult.
	Memory() MemoryStore
}

type pathCore struct {
	assignments map[protoglot.VarID][]byte
	results     []Assignment
	mem         MemoryStore
}

func newPathCore(mem MemoryStore) pathCore {
	if mem == nil {
		mem = nullMemory{}
	}
	return pathCore{assignments: make(map[protoglot.VarID][]byte), mem: mem}
}

func (c *pathCore) HasData(v *Variable) bool {
	_, ok := c.assignments[v.id]
	return ok
}

func (c *pathCore) GetData(v *Variable) []byte {
	return c.assignments[v.id]
}

func (c *pathCore) AssignData(v *Variable, b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)
	c.assignments[v.id] = cp
}

func (c *pathCore) AddResult(v *Variable, b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)
	c.results = append(c.results, Assignment{Variable: v, Bytes: cp})
}

func (c *pathCore) Results() []Assignment {
	out := make([]Assignment, len(c.results))
	copy(out, c.results)
	return out
}

func (c *pathCore) Memory() MemoryStore { return c.mem }

func (c pathCore) duplicate() pathCore {
	cp := pathCore{
		assignments: make(map[protoglot.VarID][]byte, len(c.assignments)),
		results:     make([]Assignment, len(c.results)),
		mem:         c.mem,
	}
	for k, v := range c.assignments {
		b := make([]byte, len(v))
		copy(b, v)
		cp.assignments[k] = b
	}
	copy(cp.results, c.results)
	return cp
}

// nullMemory is used when a caller runs parse/specialize without an Actor
// (e.g. unit tests on a bare Symbol): relations that need persisted state
// simply see nothing recorded.
type nullMemory struct{}

func (nullMemory) Get(protoglot.VarID) ([]byte, bool) { return nil, false }
func (nullMemory) Set(protoglot.VarID, []byte)        {}

// ParsingPath carries the residual byte string still to be consumed, plus
// the assignments/results accumulated so far.
type ParsingPath struct {
	pathCore
	Remaining []byte
}

// NewParsingPath creates a ParsingPath over the full input, ready to start
// parsing at the root Variable.
func NewParsingPath(input []byte, mem MemoryStore) *ParsingPath {
	return &ParsingPath{pathCore: newPathCore(mem), Remaining: input}
}

// Duplicate deep-copies assignments/results/remaining buffer.
func (p *ParsingPath) Duplicate() Path {
	rem := make([]byte, len(p.Remaining))
	copy(rem, p.Remaining)
	return &ParsingPath{pathCore: p.pathCore.duplicate(), Remaining: rem}
}

// consume returns a copy of p with the first n bytes of Remaining removed.
func (p *ParsingPath) consume(n int) *ParsingPath {
	next := p.Duplicate().(*ParsingPath)
	next.Remaining = next.Remaining[n:]
	return next
}

// SpecializingPath carries the bytes produced so far.
type SpecializingPath struct {
	pathCore
	Produced []byte
	rng      randSource
}

// NewSpecializingPath creates an empty SpecializingPath.
func NewSpecializingPath(mem MemoryStore, opts ...SpecializeOption) *SpecializingPath {
	p := &SpecializingPath{pathCore: newPathCore(mem)}
	for _, o := range opts {
		o(p)
	}
	if p.rng == nil {
		p.rng = defaultRand()
	}
	return p
}

// Duplicate deep-copies assignments/results/produced buffer. The random
// source is shared (not duplicated): branches of a single specialize call
// should not silently resynchronize to the same draws.
func (p *SpecializingPath) Duplicate() Path {
	prod := make([]byte, len(p.Produced))
	copy(prod, p.Produced)
	return &SpecializingPath{pathCore: p.pathCore.duplicate(), Produced: prod, rng: p.rng}
}

// append adds b to Produced and returns p for chaining.
func (p *SpecializingPath) append(b []byte) *SpecializingPath {
	p.Produced = append(p.Produced, b...)
	return p
}
