/*
Package protoglot is a protocol modeling toolbox.

Protoglot drives one endpoint of a bidirectional channel according to a
learned or authored protocol description, parsing received bytes into
structured symbols and synthesising outgoing bytes from those symbols.
Package structure is as follows:

■ vocab: Package vocab implements the vocabulary engine — a tree of typed
Variables (Data, Relation, Agg, Alt, Repeat) that parses and specializes
byte strings against Symbols built from Fields.

■ grammar: Package grammar implements the grammar engine — States joined
by Transitions, driven by an Actor that plays either the initiator or the
responder role.

■ memory: Package memory provides the per-Actor scratchpad (last bytes
observed per variable) and the visit log consulted and produced by
relation variables and the grammar engine.

■ layer: Package layer defines the Abstraction Layer the engine talks to
for channel I/O, plus an in-memory reference transport.

■ perr: Package perr collects the error kinds the engine distinguishes.

The base package contains data types used throughout all the other
packages: variable identities and byte spans.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The Protoglot Authors

*/
package protoglot
