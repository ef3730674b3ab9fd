package vocab

import (
	"bytes"
	"testing"
)

func TestParseRepeatGreedy(t *testing.T) {
	child := NewData(DataType{Kind: Raw, Range: Fixed(1)})
	rep := NewRepeat(child, Range{Min: 0, Max: 3}, nil)
	sym := NewSymbol("s", NewField("items", rep))

	results, err := sym.Parse([]byte("abc"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if string(results[0].Bytes) != "abc" {
		t.Errorf("items = %q, want %q (greedy max repetitions)", results[0].Bytes, "abc")
	}
}

func TestParseRepeatWithDelimiter(t *testing.T) {
	child := NewData(DataType{Kind: Raw, Range: Fixed(1)})
	sep := &RepeatDelimiter{Variable: RawConst(",")}
	rep := NewRepeat(child, Range{Min: 1, Max: 3}, sep)
	sym := NewSymbol("s", NewField("items", rep))

	results, err := sym.Parse([]byte("a,b,c"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if string(results[0].Bytes) != "a,b,c" {
		t.Errorf("items = %q, want %q", results[0].Bytes, "a,b,c")
	}
}

func TestSpecializeRepeatBounds(t *testing.T) {
	child := RawConst("x")
	rep := NewRepeat(child, Fixed(4), nil)
	sym := NewSymbol("s", NewField("items", rep))

	produced, _, err := sym.Specialize()
	if err != nil {
		t.Fatalf("Specialize: %v", err)
	}
	if !bytes.Equal(produced, []byte("xxxx")) {
		t.Errorf("produced = %q, want %q", produced, "xxxx")
	}
}

func TestSpecializeRepeatRejectsBadRange(t *testing.T) {
	child := RawConst("x")
	rep := &Variable{
		id:          allocID(),
		kind:        RepeatVar,
		repeatChild: child,
		repeatRange: Range{Min: 3, Max: 1},
	}
	sym := NewSymbol("s", NewField("items", rep))
	if _, _, err := sym.Specialize(); err == nil {
		t.Fatal("expected error for Repeat with max < min")
	}
}
