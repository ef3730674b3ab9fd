package memory

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// VisitLog is the audit trail of textual events an Actor accumulates while
// walking its automaton. Actor.Run appends the name of every State it
// enters; transition choices and timeouts are not recorded. It is
// part of the user contract (spec §9: "preserve for the visit log") even
// though the active flags it used to shadow are advisory-only.
type VisitLog struct {
	entries *arraylist.List
}

// NewVisitLog creates an empty visit log.
func NewVisitLog() *VisitLog {
	return &VisitLog{entries: arraylist.New()}
}

// Append records an event, in order.
func (v *VisitLog) Append(event string) {
	v.entries.Add(event)
}

// Entries returns the recorded events in append order.
func (v *VisitLog) Entries() []string {
	out := make([]string, v.entries.Size())
	for i, x := range v.entries.Values() {
		out[i] = x.(string)
	}
	return out
}

// Len returns the number of recorded events.
func (v *VisitLog) Len() int {
	return v.entries.Size()
}

// Clear empties the log. The engine never calls it: NewActor gives each
// Actor a fresh log.
func (v *VisitLog) Clear() {
	v.entries.Clear()
}
