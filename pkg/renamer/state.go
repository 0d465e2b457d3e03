package renamer

import "strings"

// scopeSeparator joins ancestor names into a numbering scope key. A control
// character avoids collisions with layer names containing separators.
const scopeSeparator = "\x00"

// State holds the mutable data shared by all items of one render pass:
// numbering counters and per-scope item totals for descending numbers.
//
// A State must not be shared across passes. Create a fresh one per pass and
// discard it afterwards; independent passes (export vs. preview) with their
// own State may run concurrently.
type State struct {
	counters    map[counterKey]*counter
	scopeTotals map[string]int
	total       int
}

// counterKey identifies one numbering counter. Counters are shared by all
// field calls with the same digit pattern within the same scope, so two
// "[001]" fields in one pattern advance a single counter while "[001]" and
// "[005]" advance independently.
type counterKey struct {
	digits string
	scope  string
}

type counter struct {
	next    int
	step    int
	padding int
}

func (c *counter) emit() string {
	value := c.next
	c.next += c.step

	return padNumber(value, c.padding)
}

// NewState creates the state for one render pass over the given items.
// The items are only counted (total and per parent group) to seed descending
// number fields; they are not retained.
func NewState(items []Item) *State {
	s := &State{
		counters:    make(map[counterKey]*counter),
		scopeTotals: make(map[string]int),
	}

	for _, item := range items {
		s.scopeTotals[scopeKey(item.Path)]++
		s.total++
	}

	return s
}

func scopeKey(path []string) string {
	return strings.Join(path, scopeSeparator)
}
