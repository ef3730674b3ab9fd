/*
Package vocab implements the vocabulary engine: a tree of Variable nodes
typed by domain (Raw bytes, String, Integer, BitArray) and composed by Agg
(sequence), Alt (choice) and Repeat nodes. Leaves may be relation
variables whose value is derived from other nodes (Size, Value, Hash).

The engine performs two dual operations over the tree, Parse and
Specialize. Parse is modeled as a non-deterministic generator over a Path:
given a Path, a Variable produces a sequence of continuation Paths, one per
successful branch. Failure is the empty sequence. Specialize makes one
choice at each Alt and Repeat and produces a single result; it never
backtracks.

Building a Symbol

Symbols are built directly from Variables and Fields:

    alt   := vocab.NewAlt(vocab.RawConst("A"), vocab.RawConst("B"), vocab.RawConst("C"))
    size  := vocab.NewRelation(alt, vocab.SizeRelation, vocab.DataType{Kind: vocab.Integer, UnitSize: 8})
    sym   := vocab.NewSymbol("Greeting",
        vocab.NewField("size", size),
        vocab.NewField("body", alt),
    )

Parsing and specializing

    assign, err := sym.Parse([]byte{0x01, 'A'})
    bytes, assign, err := sym.Specialize()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The Protoglot Authors

*/
package vocab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'protoglot.vocab'.
func tracer() tracing.Trace {
	return tracing.Select("protoglot.vocab")
}
