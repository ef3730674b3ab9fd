package layer

import (
	"testing"
	"time"

	"github.com/mvossen/protoglot/perr"
	"github.com/mvossen/protoglot/vocab"
)

func testCatalogue(t *testing.T) *vocab.Catalogue {
	t.Helper()
	c := vocab.NewCatalogue()
	sym := vocab.NewSymbol("greeting", vocab.NewField("magic", vocab.RawConst("HI")))
	if err := c.Register(sym); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return c
}

func TestPipeRoundTrip(t *testing.T) {
	cat := testCatalogue(t)
	a, b := NewPipePair(cat)
	defer a.CloseChannel()
	defer b.CloseChannel()

	sent := make(chan struct{})
	go func() {
		if _, _, err := a.WriteSymbol(vocab.NewSymbol("greeting", vocab.NewField("magic", vocab.RawConst("HI"))), nil); err != nil {
			t.Errorf("WriteSymbol: %v", err)
		}
		close(sent)
	}()

	sym, raw, _, err := b.ReadSymbol(2 * time.Second)
	if err != nil {
		t.Fatalf("ReadSymbol: %v", err)
	}
	<-sent
	if sym.Name != "greeting" || string(raw) != "HI" {
		t.Fatalf("got symbol %q, raw %q", sym.Name, raw)
	}
	gotSym, gotRaw, _ := b.LastReceived()
	if gotSym != sym || string(gotRaw) != "HI" {
		t.Fatalf("LastReceived() = %v, %q", gotSym, gotRaw)
	}
}

func TestPipeReadTimeout(t *testing.T) {
	cat := testCatalogue(t)
	a, b := NewPipePair(cat)
	defer a.CloseChannel()
	defer b.CloseChannel()

	_, _, _, err := b.ReadSymbol(50 * time.Millisecond)
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if _, ok := err.(*perr.TimeoutError); !ok {
		t.Fatalf("err = %T, want *perr.TimeoutError", err)
	}
}
