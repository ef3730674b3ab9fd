package vocab

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

// TestHashRelationSHA256 implements the spec's S5 scenario: a Hash relation
// over a fixed target yields the target's digest, truncated/padded to the
// relation's own DataType width.
func TestHashRelationSHA256(t *testing.T) {
	target := RawConst("payload")
	hashVar := NewRelation(target, HashRelation, DataType{Kind: Raw, Range: Fixed(sha256.Size)})
	hashVar.relation.Algo = SHA256

	sym := NewSymbol("s",
		NewField("payload", target),
		NewField("digest", hashVar),
	)
	_, results, err := sym.Specialize()
	if err != nil {
		t.Fatalf("Specialize: %v", err)
	}
	want := sha256.Sum256([]byte("payload"))
	if !bytes.Equal(results[1].Bytes, want[:]) {
		t.Errorf("digest = %x, want %x", results[1].Bytes, want)
	}
}

func TestValueRelationCopiesTarget(t *testing.T) {
	target := NewData(DataType{Kind: Raw, Range: Fixed(3)})
	target.preset = []byte("abc")
	echo := NewRelation(target, ValueRelation, DataType{Kind: Raw, Range: Fixed(3)})
	sym := NewSymbol("s", NewField("f1", target), NewField("f2", echo))

	_, results, err := sym.Specialize()
	if err != nil {
		t.Fatalf("Specialize: %v", err)
	}
	if string(results[1].Bytes) != "abc" {
		t.Errorf("echo = %q, want %q", results[1].Bytes, "abc")
	}
}

func TestUnknownHashAlgorithmRejected(t *testing.T) {
	target := RawConst("x")
	hashVar := NewRelation(target, HashRelation, DataType{Kind: Raw, Range: Fixed(4)})
	hashVar.relation.Algo = HashAlgorithm("not-a-real-algo")
	sym := NewSymbol("s", NewField("f1", target), NewField("f2", hashVar))

	if _, _, err := sym.Specialize(); err == nil {
		t.Fatal("expected error for unknown hash algorithm")
	}
}
