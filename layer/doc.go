/*
Package layer implements the Abstraction Layer: the grammar engine's sole
view of a transport plus Symbol (de)serialization. An AbstractionLayer owns
symbol <-> bytes conversion by consulting an application-supplied
vocab.Catalogue and running Symbol.Parse/Specialize.

Pipe is an in-memory, in-process implementation for two Actors that talk to
each other directly (e.g. a client and a server driven by the same test or
demo binary), built on the stdlib's net.Pipe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The Protoglot Authors

*/
package layer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'protoglot.layer'.
func tracer() tracing.Trace {
	return tracing.Select("protoglot.layer")
}
