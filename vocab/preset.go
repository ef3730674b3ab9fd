package vocab

import "github.com/mvossen/protoglot"

// Preset is a partial assignment pinning specific Variables to fixed byte
// values. Grammar transitions use Presets two ways (spec §3,§4.2):
// pinning sub-variables to fixed values during specialize (inputPreset,
// outputPresets), and matching a received symbol's parsed structure
// (inputSymbolPreset) before accepting a transition.
//
// This is the same shape of problem terex's GCons.Match/matchAtom solves
// for s-expression patterns — match structure, binding free positions —
// simplified here to a flat map since protoglot's domain is a fixed
// Variable tree rather than an open-ended Lisp list.
type Preset struct {
	values map[protoglot.VarID][]byte
}

// NewPreset creates an empty Preset.
func NewPreset() *Preset {
	return &Preset{values: make(map[protoglot.VarID][]byte)}
}

// Pin fixes v's value to b.
func (p *Preset) Pin(v *Variable, b []byte) *Preset {
	p.values[v.id] = b
	return p
}

// Get returns the pinned value for v, if any.
func (p *Preset) Get(v *Variable) ([]byte, bool) {
	if p == nil {
		return nil, false
	}
	b, ok := p.values[v.id]
	return b, ok
}

// ApplyToSpecialize seeds path's assignments with every pinned value, so
// later specialize calls treat those Variables as already resolved — the
// same mechanism the relation dependency pre-pass uses, just sourced from
// user intent rather than a target derivation.
func (p *Preset) ApplyToSpecialize(path *SpecializingPath) {
	if p == nil {
		return
	}
	for id, b := range p.values {
		path.assignments[id] = append([]byte(nil), b...)
	}
}

// Matches reports whether every pinned value in p agrees with the bytes
// recorded in results for the same Variable. Fields not mentioned in p
// impose no constraint (spec §3: a preset is a *partial* assignment).
func (p *Preset) Matches(results []FieldResult) bool {
	if p == nil {
		return true
	}
	byID := make(map[protoglot.VarID][]byte, len(results))
	for _, r := range results {
		byID[r.Field.Variable.id] = r.Bytes
	}
	for id, want := range p.values {
		got, ok := byID[id]
		if !ok || !bytesEqual(got, want) {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
