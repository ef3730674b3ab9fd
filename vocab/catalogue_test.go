package vocab

import "testing"

func TestCatalogueRegisterAndResolve(t *testing.T) {
	c := NewCatalogue()
	sym := NewSymbol("hello", NewField("magic", RawConst("HI")))
	if err := c.Register(sym); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok := c.Resolve("hello")
	if !ok || got != sym {
		t.Fatalf("Resolve(hello) = %v, %v", got, ok)
	}
	if err := c.Register(sym); err == nil {
		t.Fatal("expected error re-registering the same name")
	}
}

func TestCatalogueParseAnyFallsBackToUnknown(t *testing.T) {
	c := NewCatalogue()
	sym := NewSymbol("hello", NewField("magic", RawConst("HI")))
	if err := c.Register(sym); err != nil {
		t.Fatalf("Register: %v", err)
	}
	matched, results, err := c.ParseAny([]byte("HI"))
	if err != nil || matched != sym || len(results) != 1 {
		t.Fatalf("ParseAny(HI) = %v, %v, %v", matched, results, err)
	}

	matched, _, err = c.ParseAny([]byte("nope"))
	if err != nil || !matched.IsUnknown() {
		t.Fatalf("ParseAny(nope) = %v, %v, want UnknownSymbol", matched, err)
	}
}

func TestCatalogueRegisterRejectsCycle(t *testing.T) {
	a := &Variable{id: allocID(), kind: RelationVar, dataType: DataType{Kind: Raw, Range: Fixed(1)}}
	b := &Variable{id: allocID(), kind: RelationVar, dataType: DataType{Kind: Raw, Range: Fixed(1)}}
	a.relation = &Relation{Target: b, Kind: ValueRelation}
	b.relation = &Relation{Target: a, Kind: ValueRelation}
	sym := NewSymbol("broken", NewField("a", a), NewField("b", b))

	c := NewCatalogue()
	if err := c.Register(sym); err == nil {
		t.Fatal("expected cycle to be rejected at registration")
	}
}
