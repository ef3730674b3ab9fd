package vocab

import (
	"testing"

	"github.com/mvossen/protoglot"
)

func TestParsingPathConsumeDoesNotAliasOriginal(t *testing.T) {
	p := NewParsingPath([]byte("hello"), nil)
	v := RawConst("he")
	p.AssignData(v, []byte("he"))
	next := p.consume(2)

	if string(next.Remaining) != "llo" {
		t.Fatalf("Remaining = %q, want %q", next.Remaining, "llo")
	}
	if !p.HasData(v) {
		t.Fatal("original path lost its assignment after consume")
	}
	next.AssignData(v, []byte("zz"))
	if string(p.GetData(v)) != "he" {
		t.Fatal("mutating the duplicate's assignment leaked back into the original")
	}
}

func TestSpecializingPathDuplicateSharesRand(t *testing.T) {
	p := NewSpecializingPath(nil)
	dup := p.Duplicate().(*SpecializingPath)
	if dup.rng != p.rng {
		t.Fatal("Duplicate must share the random source, not fork it")
	}
}

type fakeMemory struct {
	data map[protoglot.VarID][]byte
}

func (f *fakeMemory) Get(id protoglot.VarID) ([]byte, bool) { b, ok := f.data[id]; return b, ok }
func (f *fakeMemory) Set(id protoglot.VarID, b []byte)      { f.data[id] = append([]byte(nil), b...) }

func TestNullMemoryFallback(t *testing.T) {
	p := NewParsingPath([]byte("x"), nil)
	if _, ok := p.Memory().Get(1); ok {
		t.Fatal("nullMemory must report nothing recorded")
	}
}

func TestMemoryStoreWiredThroughOption(t *testing.T) {
	mem := &fakeMemory{data: make(map[protoglot.VarID][]byte)}
	mem.Set(42, []byte("seen"))
	p := NewSpecializingPath(nil, WithMemory(mem))
	b, ok := p.Memory().Get(42)
	if !ok || string(b) != "seen" {
		t.Fatalf("Memory().Get(42) = %v, %v, want seen, true", b, ok)
	}
}
