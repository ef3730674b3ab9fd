package vocab

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand"
)

// randSource is the minimal random-number surface the vocabulary engine
// needs: a uniform choice among n alternatives, and a length draw within a
// Range. Both Alt's uniform choice and Repeat's count choice go through it.
type randSource interface {
	Intn(n int) int
}

// SpecializeOption configures a SpecializingPath at construction.
type SpecializeOption func(*SpecializingPath)

// WithRand pins the random source a specialize run uses, for reproducible
// fuzzing runs and for the seeded-determinism property (spec §8, S2/S3).
func WithRand(r *mrand.Rand) SpecializeOption {
	return func(p *SpecializingPath) { p.rng = r }
}

// WithPreset pins the given Preset's values before specialize runs, so
// pinned Variables are treated as already resolved.
func WithPreset(p *Preset) SpecializeOption {
	return func(path *SpecializingPath) { p.ApplyToSpecialize(path) }
}

// WithMemory attaches the Actor-scoped scratchpad a specialize run's
// Relation leaves should consult, e.g. for values learned from a
// previously received message. Callers outside of an Actor (bare Symbol
// tests) may omit it; relations then simply see nothing recorded.
func WithMemory(mem MemoryStore) SpecializeOption {
	return func(p *SpecializingPath) { p.mem = mem }
}

// defaultRand returns a new math/rand.Rand seeded from crypto/rand (one per
// SpecializingPath), so unseeded specialize calls still get non-repeating, non-predictable
// output without requiring every caller to plumb a seed through.
func defaultRand() randSource {
	return mrand.New(mrand.NewSource(cryptoSeed()))
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
