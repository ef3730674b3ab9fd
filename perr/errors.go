/*
Package perr collects the error kinds the protoglot engine distinguishes.

ParsingError is intentionally not exported here: it is an internal
control-flow signal of the vocab package (one branch of parse/specialize
failed) and is always caught locally, never surfacing to a caller. Every
other kind here is a terminal condition the grammar engine consults user
callbacks about before unwinding the Actor loop.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The Protoglot Authors

*/
package perr

import "fmt"

// SymbolRejectedError reports that a byte string matched no Symbol in the
// catalogue and was mapped to the UnknownSymbol.
type SymbolRejectedError struct {
	Bytes []byte
}

func (e *SymbolRejectedError) Error() string {
	return fmt.Sprintf("protoglot: %d bytes rejected by every known symbol", len(e.Bytes))
}

// UnexpectedSymbolError reports that a known symbol was received but no
// transition out of the current state accepted it.
type UnexpectedSymbolError struct {
	State  string
	Symbol string
}

func (e *UnexpectedSymbolError) Error() string {
	return fmt.Sprintf("protoglot: unexpected symbol %q received in state %q", e.Symbol, e.State)
}

// TimeoutError reports that an Abstraction Layer's ReadSymbol exceeded its
// deadline. The grammar engine may still absorb it through an EmptySymbol
// transition or the Actor's timeout callback.
type TimeoutError struct {
	State string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("protoglot: timed out waiting for input in state %q", e.State)
}

// TransportError wraps a failure from the Abstraction Layer's transport.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("protoglot: transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// ActorStopError signals cooperative cancellation of an Actor.
type ActorStopError struct{}

func (e *ActorStopError) Error() string { return "protoglot: actor stopped" }

// MaxFuzzingReachedError reports that a mutator backing a Variable is
// exhausted; specialize yields no value for the current call.
type MaxFuzzingReachedError struct {
	Variable string
}

func (e *MaxFuzzingReachedError) Error() string {
	return fmt.Sprintf("protoglot: fuzzing budget exhausted for variable %q", e.Variable)
}

// ConfigurationError reports a structurally invalid grammar or vocabulary,
// e.g. an Alt with no children or a Hash relation whose target forms a
// cycle. Relation cycles are reported by Catalogue.Register and several
// forced transitions out of one State by GrammarBuilder.Build. Other cases
// are not checked at registration and are reported only when a running
// specialize or State.Execute reaches them: an Alt with no children, an Alt
// callback index out of range, a State with no transition left to choose.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("protoglot: configuration error: %s", e.Reason)
}
