package lvmap

import (
	"sort"

	"github.com/jublebi/dynacon/label"
)

// Pair is one (Label, Value) entry of a Map, returned by Entries in
// label-ordered order.
type Pair struct {
	Label label.Label
	Value int64
}

// Map is a compacted labeled-value map: label.Label → int64, maintaining the
// no-dominated-pair invariant (spec §4.2, E2). The zero Map is empty and
// ready to use.
type Map struct {
	entries map[string]Pair // keyed by Label.Key() for O(1) exact lookup
}

// New returns an empty Map.
func New() *Map {
	return &Map{entries: make(map[string]Pair)}
}

// Len returns the number of (label, value) pairs currently stored.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns the value stored under exactly ℓ (not a subsuming label), and
// whether it is present.
func (m *Map) Get(l label.Label) (int64, bool) {
	if m == nil {
		return 0, false
	}
	p, ok := m.entries[l.Key()]
	return p.Value, ok
}

// Entries returns all pairs sorted by their label's canonical key, for
// deterministic iteration.
func (m *Map) Entries() []Pair {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Pair, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.entries[k])
	}
	return out
}

// Put inserts (ℓ, v) under the compaction invariant of spec §4.2:
//
//   - If some existing pair (ℓ', v') has ℓ' subsumes ℓ and v' ≤ v, the new
//     pair is already dominated: it is not inserted and Put returns false.
//   - Otherwise (ℓ, v) is inserted (overwriting any exact-label entry), and
//     every existing pair (ℓ', v') that (ℓ, v) dominates — i.e. ℓ subsumes ℓ'
//     and v ≤ v' — is removed. Put returns true.
//
// Complexity: O(n) in the number of currently stored pairs.
func (m *Map) Put(l label.Label, v int64) bool {
	if m.entries == nil {
		m.entries = make(map[string]Pair)
	}
	for _, p := range m.entries {
		if label.Subsumes(p.Label, l) && p.Value <= v {
			// An existing, equal-or-more-general, equal-or-better pair
			// already dominates the candidate: nothing to do.
			return false
		}
	}

	// Remove every pair the new entry dominates.
	for k, p := range m.entries {
		if label.Subsumes(l, p.Label) && v <= p.Value {
			delete(m.entries, k)
		}
	}
	m.entries[l.Key()] = Pair{Label: l, Value: v}

	return true
}

// Merge folds every pair of other into m via Put, then is already compact
// as a consequence (Put maintains the invariant incrementally). Merge is a
// no-op if other is nil or empty.
func (m *Map) Merge(other *Map) {
	if m == nil || other == nil {
		return
	}
	for _, p := range other.Entries() {
		m.Put(p.Label, p.Value)
	}
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	out := New()
	if m == nil {
		return out
	}
	for k, p := range m.entries {
		out.entries[k] = p
	}
	return out
}

// IsCompact reports whether m currently satisfies the no-dominated-pair
// invariant (spec T4). It is exposed for tests; Put/Merge always leave m
// compact, so in normal operation this is always true.
func (m *Map) IsCompact() bool {
	if m == nil {
		return true
	}
	entries := m.Entries()
	for i, a := range entries {
		for j, b := range entries {
			if i == j {
				continue
			}
			if label.Subsumes(a.Label, b.Label) && a.Value <= b.Value {
				return false
			}
		}
	}
	return true
}
