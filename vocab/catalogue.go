package vocab

import (
	"fmt"

	"github.com/mvossen/protoglot/perr"
)

// Catalogue is the application-supplied registry of known Symbols the
// Abstraction Layer consults to turn bytes into Symbols and back (spec
// §6). Adapted from runtime.SymbolTable's define/resolve-by-name shape:
// Catalogue.Register plays the role of SymbolTable.DefineTag, and
// Catalogue.Resolve plays ResolveTag — but keyed on Symbol, with
// registration additionally running each Symbol's relation-DAG compile
// step (spec §9 design note: "reject configurations with cycles at
// catalogue registration, not during specialize").
type Catalogue struct {
	byName map[string]*Symbol
	order  []*Symbol
}

// NewCatalogue creates an empty Catalogue.
func NewCatalogue() *Catalogue {
	return &Catalogue{byName: make(map[string]*Symbol)}
}

// Register adds sym to the catalogue under its Name, compiling its
// relation dependency order. Returns a ConfigurationError if sym's
// relations are cyclic, or if a Symbol with the same name is already
// registered.
func (c *Catalogue) Register(sym *Symbol) error {
	if _, exists := c.byName[sym.Name]; exists {
		return &perr.ConfigurationError{Reason: fmt.Sprintf("symbol %q already registered", sym.Name)}
	}
	if err := sym.compile(); err != nil {
		return err
	}
	c.byName[sym.Name] = sym
	c.order = append(c.order, sym)
	return nil
}

// Resolve looks up a Symbol by name.
func (c *Catalogue) Resolve(name string) (*Symbol, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Symbols returns every registered Symbol, in registration order.
func (c *Catalogue) Symbols() []*Symbol {
	out := make([]*Symbol, len(c.order))
	copy(out, c.order)
	return out
}

// ParseAny tries every registered Symbol, in registration order, and
// returns the first one that fully consumes input — or UnknownSymbol if
// none does (spec §8, property 4: "Parse totality ... never raises through
// the top-level API").
func (c *Catalogue) ParseAny(input []byte, opts ...ParseOption) (*Symbol, []FieldResult, error) {
	for _, sym := range c.order {
		results, err := sym.Parse(input, opts...)
		if err == nil {
			return sym, results, nil
		}
	}
	return UnknownSymbol(), nil, nil
}
