package vocab

import (
	"testing"

	"github.com/mvossen/protoglot/bitio"
)

func TestVariableIdentityStableAcrossRoot(t *testing.T) {
	v := RawConst("x")
	sym := NewSymbol("s", NewField("f", v))
	id1 := sym.root().children[0].ID()
	id2 := sym.root().children[0].ID()
	if id1 != id2 || id1 != v.ID() {
		t.Fatalf("root() must reuse the same Field.Variable identity, got %d, %d, want %d", id1, id2, v.ID())
	}
}

func TestNewIntegerDataType(t *testing.T) {
	v := NewInteger(16, bitio.BigEndian, false)
	if v.dataType.Kind != Integer || v.dataType.byteWidth() != 2 {
		t.Fatalf("unexpected DataType: %+v", v.dataType)
	}
}

func TestAltCallbackWrongKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic attaching AltCallback to a non-Alt Variable")
		}
	}()
	NewData(DataType{Kind: Raw, Range: Fixed(1)}).WithAltCallback(func(Path, []*Variable) int { return 0 })
}

func TestChildrenByKind(t *testing.T) {
	a, b := RawConst("a"), RawConst("b")
	agg := NewAgg(a, b)
	if len(agg.Children()) != 2 {
		t.Fatalf("Agg.Children() = %d, want 2", len(agg.Children()))
	}
	rep := NewRepeat(a, Fixed(3), nil)
	if c := rep.Children(); len(c) != 1 || c[0] != a {
		t.Fatalf("Repeat.Children() = %v, want [a]", c)
	}
	if NewData(DataType{Kind: Raw, Range: Fixed(1)}).Children() != nil {
		t.Fatal("Data leaf must have nil Children()")
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 2, Max: 4}
	for n, want := range map[int]bool{1: false, 2: true, 3: true, 4: true, 5: false} {
		if got := r.Contains(n); got != want {
			t.Errorf("Range{2,4}.Contains(%d) = %v, want %v", n, got, want)
		}
	}
}
