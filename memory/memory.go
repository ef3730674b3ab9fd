/*
Package memory implements the per-Actor scratchpad consulted by relation
variables, plus the Actor's visit log.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The Protoglot Authors

*/
package memory

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/mvossen/protoglot"
)

// tracer traces with key 'protoglot.memory'.
func tracer() tracing.Trace {
	return tracing.Select("protoglot.memory")
}

// Memory is an identity-keyed map from Variable to the last bytes observed
// or emitted for it. It is per-Actor, per-call and is never shared across
// Actors (spec §5). Clear-on-restart policy is left to the caller: a fresh
// Actor gets a fresh Memory via New.
type Memory struct {
	last map[protoglot.VarID][]byte
}

// New creates an empty Memory.
func New() *Memory {
	return &Memory{last: make(map[protoglot.VarID][]byte)}
}

// Get returns the last bytes recorded for id, and whether any were.
func (m *Memory) Get(id protoglot.VarID) ([]byte, bool) {
	b, ok := m.last[id]
	return b, ok
}

// Set records b as the last bytes observed/emitted for id.
func (m *Memory) Set(id protoglot.VarID, b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)
	m.last[id] = cp
	tracer().Debugf("memory: recorded %d bytes for var %d", len(cp), id)
}

// Has reports whether id has a recorded value.
func (m *Memory) Has(id protoglot.VarID) bool {
	_, ok := m.last[id]
	return ok
}

// Clear drops all recorded values, for callers that apply a
// clear-on-restart policy; the engine itself never calls it.
func (m *Memory) Clear() {
	m.last = make(map[protoglot.VarID][]byte)
}
