/*
Package main implements protoglotctl, an interactive shell for exercising
a protoglot vocabulary/grammar pair without writing a Go harness for every
experiment.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The Protoglot Authors

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/mvossen/protoglot/grammar"
	"github.com/mvossen/protoglot/layer"
	"github.com/mvossen/protoglot/memory"
	"github.com/mvossen/protoglot/perr"
	"github.com/mvossen/protoglot/vocab"
)

// tracer traces with key 'protoglot.ctl'.
func tracer() tracing.Trace {
	return tracing.Select("protoglot.ctl")
}

// main starts an interactive CLI ("protoglotctl") that runs a small
// built-in demo dialogue (a greeting handshake over an in-memory Pipe) and
// then drops into a REPL where users can inspect the Catalogue, rerun the
// demo, print both Actors' visit logs, and parse hex bytes against the
// Catalogue.
func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	auto := flag.Bool("run", true, "Run the demo dialogue before entering the REPL")
	flag.Parse()

	initDisplay()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to protoglotctl")

	shell := newShell()
	if *auto {
		if err := shell.runDemo(); err != nil {
			pterm.Error.Println(err.Error())
		}
	}

	repl, err := readline.New("protoglot> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	shell.repl = repl

	tracer().Infof("Quit with <ctrl>D")
	shell.Loop()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// shell holds the state a REPL session operates on: a catalogue of
// Symbols and the two Actors from the last demo run (if any).
type shell struct {
	repl      *readline.Instance
	catalogue *vocab.Catalogue
	initiator *grammar.Actor
	responder *grammar.Actor
}

func newShell() *shell {
	return &shell{catalogue: buildCatalogue()}
}

// Loop reads commands until EOF (ctrl-D) or a "quit" command.
func (sh *shell) Loop() {
	for {
		line, err := sh.repl.Readline()
		if err != nil { // io.EOF or ctrl-C
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if quit := sh.dispatch(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (sh *shell) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	switch cmd {
	case "quit", "exit":
		return true
	case "symbols":
		sh.printSymbols()
	case "run":
		if err := sh.runDemo(); err != nil {
			pterm.Error.Println(err.Error())
		}
	case "log":
		sh.printVisitLog()
	case "parse":
		if len(fields) < 2 {
			pterm.Error.Println("usage: parse <hex-bytes>")
			return false
		}
		sh.parseHex(fields[1])
	case "help":
		sh.printHelp()
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %q (try \"help\")", cmd))
	}
	return false
}

func (sh *shell) printHelp() {
	pterm.Info.Println("commands: symbols | run | log | parse <hex> | quit")
}

func (sh *shell) printSymbols() {
	var ll pterm.LeveledList
	for _, sym := range sh.catalogue.Symbols() {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: sym.String()})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func (sh *shell) printVisitLog() {
	if sh.initiator == nil {
		pterm.Info.Println("no run yet; try \"run\"")
		return
	}
	pterm.Info.Println("initiator visited: " + strings.Join(sh.initiator.VisitLog.Entries(), " -> "))
	pterm.Info.Println("responder visited: " + strings.Join(sh.responder.VisitLog.Entries(), " -> "))
}

func (sh *shell) parseHex(hexStr string) {
	raw, err := decodeHex(hexStr)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	sym, fields, err := sh.catalogue.ParseAny(raw)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(fmt.Sprintf("matched %s with %d field(s)", sym.String(), len(fields)))
	for _, f := range fields {
		pterm.Info.Println(fmt.Sprintf("  %s = % x", f.Field.Name, f.Bytes))
	}
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string %q", s)
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		var b int
		if _, err := fmt.Sscanf(s[i*2:i*2+2], "%02x", &b); err != nil {
			return nil, fmt.Errorf("invalid hex byte %q: %w", s[i*2:i*2+2], err)
		}
		out[i] = byte(b)
	}
	return out, nil
}

// runDemo plays a single handshake (hello/ack) across an in-memory Pipe
// pair, one Actor as initiator, one as responder, and records both in sh
// for later inspection.
func (sh *shell) runDemo() error {
	automaton, err := buildHandshakeGrammar(sh.catalogue)
	if err != nil {
		return err
	}

	pA, pB := layer.NewPipePair(sh.catalogue)
	sh.initiator = grammar.NewActor(automaton.Initial, pA, memory.New(), true)
	sh.responder = grammar.NewActor(automaton.Initial, pB, memory.New(), false)

	errs := make(chan error, 2)
	go func() { errs <- sh.responder.Run() }()
	go func() { errs <- sh.initiator.Run() }()

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	// The demo grammar's last state has no outgoing transitions: reaching
	// it is success, and pickTransition's "nothing to choose from" is the
	// expected way Run() unwinds once there (no separate Accept state
	// exists in the grammar model).
	if firstErr != nil {
		if _, ok := firstErr.(*perr.ConfigurationError); !ok {
			return firstErr
		}
	}
	pterm.Info.Println("demo dialogue completed")
	return nil
}

// buildCatalogue registers the demo protocol's Symbols: a fixed-header
// "hello" carrying a length-prefixed name, and a one-byte "ack".
func buildCatalogue() *vocab.Catalogue {
	cat := vocab.NewCatalogue()

	name := vocab.NewData(vocab.DataType{Kind: vocab.Raw, Range: vocab.Fixed(5)}).Named("name")
	nameLen := vocab.NewRelation(name, vocab.SizeRelation, vocab.DataType{Kind: vocab.Integer, UnitSize: 8}).Named("name_len")
	hello := vocab.NewSymbol("hello",
		vocab.NewField("magic", vocab.RawConst("HI")),
		vocab.NewField("name_len", nameLen),
		vocab.NewField("name", name),
	)
	ack := vocab.NewSymbol("ack",
		vocab.NewField("magic", vocab.RawConst("K")),
	)

	if err := cat.Register(hello); err != nil {
		tracer().Errorf("registering hello: %v", err)
	}
	if err := cat.Register(ack); err != nil {
		tracer().Errorf("registering ack: %v", err)
	}
	return cat
}

// buildHandshakeGrammar wires a three-state automaton over cat's Symbols:
// s0 opens the channel, s1's one transition exchanges "hello" for "ack" and
// leads to s2. s2 has no outgoing transitions; the conversation is over once it is
// reached. cat must be the same Catalogue instance the Pipe pair resolves
// received bytes against, since transition matching is by Symbol identity
// (see grammar/select.go matchSymbol).
func buildHandshakeGrammar(cat *vocab.Catalogue) (*grammar.Automaton, error) {
	hello, _ := cat.Resolve("hello")
	ack, _ := cat.Resolve("ack")

	b := grammar.NewGrammarBuilder("handshake")
	s0, s1, s2 := b.State("s0"), b.State("s1"), b.State("s2")
	b.OpenChannel(s0, s1).WithProbability(100)
	b.Normal(s1, s2, hello, ack).WithProbability(100)
	return b.Build(s0)
}
