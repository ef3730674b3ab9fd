package vocab

import "testing"

func TestRelationOrderDependsOnTargetFirst(t *testing.T) {
	target := RawConst("payload")
	size := NewRelation(target, SizeRelation, DataType{Kind: Integer, UnitSize: 8})
	root := NewAgg(size, target)

	order, err := relationOrder(root)
	if err != nil {
		t.Fatalf("relationOrder: %v", err)
	}
	var targetPos, sizePos = -1, -1
	for i, v := range order {
		if v.id == target.id {
			targetPos = i
		}
		if v.id == size.id {
			sizePos = i
		}
	}
	if targetPos == -1 || sizePos == -1 {
		t.Fatalf("both leaves must appear in order: %v", order)
	}
	if targetPos >= sizePos {
		t.Errorf("target must precede its relation: target at %d, size at %d", targetPos, sizePos)
	}
}

func TestRelationOrderDetectsCycle(t *testing.T) {
	// Build a two-node cycle by hand: a's relation targets b, b's relation
	// targets a. Neither can be reached from the other via Agg/Alt/Repeat
	// structure, so the only way to construct this is direct field access
	// (legal from within package vocab).
	a := &Variable{id: allocID(), kind: RelationVar, dataType: DataType{Kind: Raw, Range: Fixed(1)}}
	b := &Variable{id: allocID(), kind: RelationVar, dataType: DataType{Kind: Raw, Range: Fixed(1)}}
	a.relation = &Relation{Target: b, Kind: ValueRelation}
	b.relation = &Relation{Target: a, Kind: ValueRelation}
	root := NewAgg(a, b)

	if _, err := relationOrder(root); err == nil {
		t.Fatal("expected a ConfigurationError for a relation cycle")
	}
}

func TestCollectLeavesThroughRepeat(t *testing.T) {
	child := RawConst("x")
	rep := NewRepeat(child, Range{Min: 1, Max: 3}, nil)
	leaves := collectLeaves(rep)
	if len(leaves) != 1 || leaves[0] != child {
		t.Fatalf("collectLeaves(Repeat) = %v, want [child]", leaves)
	}
}

func TestSymbolCompileIsIdempotent(t *testing.T) {
	sym := NewSymbol("s", NewField("f1", RawConst("hi")))
	if err := sym.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	first := sym.depOrder
	if err := sym.compile(); err != nil {
		t.Fatalf("second compile: %v", err)
	}
	if len(sym.depOrder) != len(first) {
		t.Fatalf("compile must be a no-op once depOrder is cached")
	}
}
