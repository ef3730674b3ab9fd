/*
Package grammar implements the grammar engine: a directed graph of States
joined by Transitions, and the Actor that walks it.

A State holds an ordered list of outgoing Transitions plus two callback
lists (filter_transitions, modify_transition). A Transition is a tagged
variant: Normal (consumes an input symbol, sends an output symbol),
OpenChannel, CloseChannel. An Actor repeatedly asks the current State to
execute, which performs channel I/O via a layer.AbstractionLayer, invokes
the vocabulary engine to parse/specialize Symbols, and returns the next
State.

Building an Automaton

    b := grammar.NewGrammarBuilder("handshake")
    s0 := b.State("start")
    s1 := b.State("connected")
    b.Normal(s0, s1, hello, ack).WithProbability(100)
    automaton, err := b.Build(s0)

Running an Actor

    actor := grammar.NewActor(automaton.Initial, pipeLayer, memory.New(), true)
    err := actor.Run()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The Protoglot Authors

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'protoglot.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("protoglot.grammar")
}
