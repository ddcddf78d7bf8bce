package label

import (
	"sort"
	"strings"
)

// State is the truth-value a Label assigns to one proposition.
type State int8

const (
	// Positive marks the proposition as true (literal "p").
	Positive State = iota
	// Negative marks the proposition as false (literal "¬p").
	Negative
	// Unknown marks the proposition as not yet decided (literal "¿p").
	Unknown
)

// String renders a single State using the sigils from spec §2/§6 ("¿" for
// unknown, matching the ASCII-substitutable sigil the GraphML collaborator
// also accepts).
func (s State) String() string {
	switch s {
	case Positive:
		return ""
	case Negative:
		return "¬"
	case Unknown:
		return "¿"
	default:
		return "?"
	}
}

// Label is an immutable conjunction of literals over distinct propositions.
// The zero Label is the empty (universal) label. Labels are compared and
// hashed by their canonical String() form, so two Labels built from the same
// literals in different orders are equal for map-key purposes once
// canonicalized via Key().
type Label struct {
	lits map[string]State
}

// Empty returns the universal label (no literals).
func Empty() Label {
	return Label{}
}

// NewLabel builds a Label from the given proposition/state pairs. A later
// duplicate proposition overrides an earlier one (last write wins); callers
// that need conflict detection should use Conjunction instead.
func NewLabel(props []string, states []State) Label {
	if len(props) == 0 {
		return Empty()
	}
	l := Label{lits: make(map[string]State, len(props))}
	for i, p := range props {
		if p == "" {
			continue
		}
		l.lits[p] = states[i]
	}
	return l
}

// Single returns a Label with exactly one literal.
func Single(prop string, s State) Label {
	if prop == "" {
		return Empty()
	}
	return Label{lits: map[string]State{prop: s}}
}

// IsEmpty reports whether l carries no literals.
func (l Label) IsEmpty() bool {
	return len(l.lits) == 0
}

// Len returns the number of literals in l.
func (l Label) Len() int {
	return len(l.lits)
}

// Get returns the state assigned to prop and whether prop is mentioned at
// all by l.
func (l Label) Get(prop string) (State, bool) {
	s, ok := l.lits[prop]
	return s, ok
}

// Propositions returns the propositions mentioned by l in sorted order, for
// deterministic iteration (spec §5's ordering guarantee).
func (l Label) Propositions() []string {
	props := make([]string, 0, len(l.lits))
	for p := range l.lits {
		props = append(props, p)
	}
	sort.Strings(props)
	return props
}

// With returns a new Label equal to l plus the literal (prop, s), overriding
// any existing state for prop.
func (l Label) With(prop string, s State) Label {
	if prop == "" {
		return l
	}
	out := Label{lits: make(map[string]State, len(l.lits)+1)}
	for p, st := range l.lits {
		out.lits[p] = st
	}
	out.lits[prop] = s
	return out
}

// Without returns a new Label with prop removed entirely, regardless of its
// current state. This is the literal-removal primitive used by qR0 (§4.5).
func (l Label) Without(prop string) Label {
	if _, ok := l.lits[prop]; !ok {
		return l
	}
	out := Label{lits: make(map[string]State, len(l.lits))}
	for p, st := range l.lits {
		if p == prop {
			continue
		}
		out.lits[p] = st
	}
	return out
}

// WithoutAll removes every proposition in props from l.
func (l Label) WithoutAll(props ...string) Label {
	out := l
	for _, p := range props {
		out = out.Without(p)
	}
	return out
}

// String renders the canonical textual form of l: literals sorted by
// proposition name and joined by "∧", e.g. "p∧¬q∧¿r". The empty label
// renders as "⊤" (top, always true).
func (l Label) String() string {
	if l.IsEmpty() {
		return "⊤"
	}
	props := l.Propositions()
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, l.lits[p].String()+p)
	}
	return strings.Join(parts, "∧")
}

// Key returns the canonical map key for l, suitable for use as a Go map key
// where Label's own (non-comparable, map-backed) type cannot be used
// directly. It is equal for two Labels iff they carry the same literals.
func (l Label) Key() string {
	return l.String()
}

// Equal reports whether a and b carry exactly the same literals.
func Equal(a, b Label) bool {
	if len(a.lits) != len(b.lits) {
		return false
	}
	for p, s := range a.lits {
		if bs, ok := b.lits[p]; !ok || bs != s {
			return false
		}
	}
	return true
}
