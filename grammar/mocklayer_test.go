package grammar

import (
	"time"

	"github.com/mvossen/protoglot/perr"
	"github.com/mvossen/protoglot/vocab"
)

// mockLayer is a scripted AbstractionLayer for grammar tests: reads are
// served from a fixed queue, writes are recorded, and OpenChannel/
// CloseChannel errors are injectable.
type mockLayer struct {
	toRead       []*vocab.Symbol
	readIdx      int
	written      []*vocab.Symbol
	openErr      error
	openCalls    int
	closeCalls   int
	checkQueued  bool
	lastSentVal  *vocab.Symbol
	lastRecvVal  *vocab.Symbol
}

func (m *mockLayer) OpenChannel() error {
	m.openCalls++
	return m.openErr
}

func (m *mockLayer) CloseChannel() error {
	m.closeCalls++
	return nil
}

func (m *mockLayer) WriteSymbol(sym *vocab.Symbol, preset *vocab.Preset) ([]byte, []vocab.FieldResult, error) {
	m.written = append(m.written, sym)
	m.lastSentVal = sym
	return []byte(sym.Name), nil, nil
}

func (m *mockLayer) ReadSymbol(timeout time.Duration) (*vocab.Symbol, []byte, []vocab.FieldResult, error) {
	if m.readIdx >= len(m.toRead) {
		return nil, nil, nil, &perr.TimeoutError{}
	}
	sym := m.toRead[m.readIdx]
	m.readIdx++
	m.lastRecvVal = sym
	return sym, []byte(sym.Name), nil, nil
}

func (m *mockLayer) CheckReceived() bool { return m.checkQueued }

func (m *mockLayer) LastSent() (*vocab.Symbol, []byte, []vocab.FieldResult) {
	return m.lastSentVal, nil, nil
}

func (m *mockLayer) LastReceived() (*vocab.Symbol, []byte, []vocab.FieldResult) {
	return m.lastRecvVal, nil, nil
}
