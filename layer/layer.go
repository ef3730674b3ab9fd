package layer

import (
	"time"

	"github.com/mvossen/protoglot/vocab"
)

// AbstractionLayer is the engine's sole view of a transport plus Symbol
// (de)serialization (spec §6). The grammar engine never touches raw bytes
// or a net.Conn directly — everything goes through this interface, so a
// grammar built against Pipe runs unchanged against a real transport
// implementation supplied by an application.
type AbstractionLayer interface {
	OpenChannel() error
	CloseChannel() error

	// WriteSymbol specializes sym (applying preset, if non-nil) and sends
	// the resulting bytes. Returns the bytes sent and the per-field
	// structure specialize produced.
	WriteSymbol(sym *vocab.Symbol, preset *vocab.Preset) (sent []byte, structure []vocab.FieldResult, err error)

	// ReadSymbol blocks for up to timeout awaiting one framed message, then
	// resolves it against the layer's Catalogue. timeout <= 0 means no
	// deadline. Returns UnknownSymbol (never an error) when bytes arrive
	// but match no catalogued Symbol — see vocab.Catalogue.ParseAny.
	ReadSymbol(timeout time.Duration) (sym *vocab.Symbol, raw []byte, structure []vocab.FieldResult, err error)

	// CheckReceived reports whether bytes are already waiting, without
	// blocking.
	CheckReceived() bool

	LastSent() (sym *vocab.Symbol, raw []byte, structure []vocab.FieldResult)
	LastReceived() (sym *vocab.Symbol, raw []byte, structure []vocab.FieldResult)
}

// lastExchange tracks the most recent sent/received Symbol for an
// AbstractionLayer, the bookkeeping spec §6 calls
// last_sent_*/last_received_*.
type lastExchange struct {
	sym       *vocab.Symbol
	raw       []byte
	structure []vocab.FieldResult
}
