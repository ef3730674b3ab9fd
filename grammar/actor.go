package grammar

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand"
	"time"

	"github.com/mvossen/protoglot/layer"
	"github.com/mvossen/protoglot/memory"
	"github.com/mvossen/protoglot/perr"
	"github.com/mvossen/protoglot/vocab"
)

// exchange records a Symbol's bytes/structure for last_sent_*/
// last_received_* bookkeeping (spec §3: Actor "owns... a Memory, a visit
// log").
type exchange struct {
	sym       *vocab.Symbol
	raw       []byte
	structure []vocab.FieldResult
}

// Actor is an execution instance driving one endpoint of a protocol
// dialogue (spec §3). It owns a reference to the initial State, an
// AbstractionLayer, a Memory, a visit log, an initiator flag, and the three
// read-path callbacks spec §3/§6 name.
type Actor struct {
	Initial     *State
	Layer       layer.AbstractionLayer
	Memory      *memory.Memory
	VisitLog    *memory.VisitLog
	Initiator   bool
	ReadTimeout time.Duration

	CbkReadSymbolTimeout    func(state *State, current *Transition) *State
	CbkReadUnknownSymbol    func(state *State, current *Transition, raw []byte) *State
	CbkReadUnexpectedSymbol func(state *State, current *Transition, sym *vocab.Symbol, raw []byte, structure []vocab.FieldResult) *State

	rng     *mrand.Rand
	lastSent,
	lastReceived exchange
	stopped bool
}

// NewActor creates an Actor ready to Run from initial, communicating over l.
// mem is handed to action callbacks; the Actor does not pass it to l, so
// relation leaves parsed or specialized by the layer do not read or record
// values in it.
func NewActor(initial *State, l layer.AbstractionLayer, mem *memory.Memory, initiator bool) *Actor {
	return &Actor{
		Initial:     initial,
		Layer:       l,
		Memory:      mem,
		VisitLog:    memory.NewVisitLog(),
		Initiator:   initiator,
		ReadTimeout: 5 * time.Second,
		rng:         mrand.New(mrand.NewSource(cryptoSeed())),
	}
}

func cryptoSeed() int64 {
	max := big.NewInt(1)
	max.Lsh(max, 63)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], 0x5eed)
		return int64(binary.BigEndian.Uint64(buf[:]))
	}
	return n.Int64()
}

// WithRand overrides the Actor's random source, for reproducible
// probability-bucket tests (spec §8, S6).
func (a *Actor) WithRand(r *mrand.Rand) *Actor {
	a.rng = r
	return a
}

// Stop signals cooperative cancellation: the next blocking point surfaces
// an ActorStopError (spec §5 "Cancellation").
func (a *Actor) Stop() { a.stopped = true }

// LastSent returns the most recently sent Symbol/bytes/structure.
func (a *Actor) LastSent() (*vocab.Symbol, []byte, []vocab.FieldResult) {
	return a.lastSent.sym, a.lastSent.raw, a.lastSent.structure
}

// LastReceived returns the most recently received Symbol/bytes/structure.
func (a *Actor) LastReceived() (*vocab.Symbol, []byte, []vocab.FieldResult) {
	return a.lastReceived.sym, a.lastReceived.raw, a.lastReceived.structure
}

func (a *Actor) recordSent(sym *vocab.Symbol, raw []byte, structure []vocab.FieldResult) {
	a.lastSent = exchange{sym: sym, raw: raw, structure: structure}
}

func (a *Actor) recordReceived(sym *vocab.Symbol, raw []byte, structure []vocab.FieldResult) {
	a.lastReceived = exchange{sym: sym, raw: raw, structure: structure}
}

func (a *Actor) runActionCallbacks(t *Transition, sym *vocab.Symbol, structure []vocab.FieldResult, tag ActionTag, state *State) {
	for _, cb := range t.ActionCallbacks {
		cb(sym, structure, tag, state, a.Memory)
	}
}

// Run drives the Actor loop (spec §4.2 "Actor loop"): repeatedly execute
// the current State until it returns nil, a stop signal unwinds, or a
// transport error propagates.
func (a *Actor) Run() error {
	current := a.Initial
	for current != nil {
		a.VisitLog.Append(current.Name)
		next, err := current.Execute(a)
		if err != nil {
			if _, ok := err.(*perr.ActorStopError); ok {
				return nil
			}
			return err
		}
		current = next
	}
	return nil
}
