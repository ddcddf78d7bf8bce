package status

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Algorithm identifies which DC-checking or minimization algorithm produced
// a CheckStatus, per the set named in spec §2 "S" and §6's CLI surface.
type Algorithm string

// The STNU/CSTN algorithms selectable per spec §4.4/§6.
const (
	Morris2014             Algorithm = "Morris2014"
	Morris2014Dispatchable Algorithm = "Morris2014Dispatchable"
	FDSTNU                 Algorithm = "FD_STNU"
	FDSTNUImproved         Algorithm = "FD_STNU_IMPROVED"
	RUL2018                Algorithm = "RUL2018"
	RUL2021                Algorithm = "RUL2021"
	SRNCycleFinder         Algorithm = "SRNCycleFinder"
	CSTNLabelPropagation   Algorithm = "CSTN"
	DispatchMinimizer      Algorithm = "DispatchMinimizer"
)

// Kind classifies a witness negative cycle, per spec §3's three tags.
type Kind string

const (
	// LoGraphPotFailure is a negative cycle found directly in the
	// lower-/ordinary-edge potential graph (§4.3).
	LoGraphPotFailure Kind = "loGraphPotFailure"
	// CCLoop is a negative cycle arising from the contingent-link-centric
	// back-propagation of §4.4.2.
	CCLoop Kind = "ccLoop"
	// InterruptionCycle is a cycle among mutually-interrupting contingent
	// links (spec §4.4.2 step 3, scenario 4 of §8).
	InterruptionCycle Kind = "interruptionCycle"
)

// CycleEdge is one edge of a Witness, in traversal order.
type CycleEdge struct {
	// Name is the edge's unique name in the graph it was drawn from.
	Name string
	// From and To are the edge's endpoints, in the direction traversed.
	From, To string
	// Value is the weight contributed by this edge to the cycle sum.
	Value int64
}

// Witness is an ordered negative cycle certifying non-DC (spec §3, §4.4.3,
// §8 T7). Edges, summed in order, total a value strictly less than zero.
type Witness struct {
	Kind  Kind
	Edges []CycleEdge
}

// Sum returns the total weight of the witness cycle.
func (w *Witness) Sum() int64 {
	if w == nil {
		return 0
	}
	var total int64
	for _, e := range w.Edges {
		total += e.Value
	}
	return total
}

// String renders the witness as "A --(5)--> B B --(-9)--> A [kind=ccLoop, sum=-4]".
func (w *Witness) String() string {
	if w == nil || len(w.Edges) == 0 {
		return "<no witness>"
	}
	parts := make([]string, 0, len(w.Edges))
	for _, e := range w.Edges {
		parts = append(parts, fmt.Sprintf("%s --(%d)--> %s", e.From, e.Value, e.To))
	}
	return fmt.Sprintf("%s [kind=%s, sum=%d]", strings.Join(parts, " "), w.Kind, w.Sum())
}

// CheckStatus aggregates the outcome of a DC-checking or minimization run.
type CheckStatus struct {
	// Algorithm names the algorithm that produced this status.
	Algorithm Algorithm

	// Controllable is the consistency/controllability verdict. Only
	// meaningful when Finished is true and Timeout is false.
	Controllable bool

	// Finished reports whether the algorithm reached a verdict (true) or
	// was aborted by timeout (false).
	Finished bool

	// Timeout reports whether the run was aborted by the cooperative
	// deadline of spec §5.
	Timeout bool

	// CycleCount is a counter for negative cycles encountered. No checker in
	// this module sets it, so it stays 0.
	CycleCount int

	// RuleCounters counts applications of each named propagation rule
	// (e.g. "RELAX", "LOWER-", "qR0", "qR3", "qLP"), per spec §3.
	RuleCounters map[string]int64

	// ElapsedTime is the wall-clock duration of the run.
	ElapsedTime time.Duration

	// Witness is the negative cycle certifying non-DC, if Controllable is
	// false and one was reconstructed.
	Witness *Witness

	// EdgeOrigins maps a derived edge's name to the ordered sequence of
	// originating edge names it was assembled from, used to expand derived
	// edges into primitive edges when rendering a witness (spec §3).
	EdgeOrigins map[string][]string
}

// New returns a CheckStatus with counters initialized and ready to
// accumulate.
func New(alg Algorithm) *CheckStatus {
	return &CheckStatus{
		Algorithm:    alg,
		RuleCounters: make(map[string]int64),
		EdgeOrigins:  make(map[string][]string),
	}
}

// Count increments the named rule counter by one.
func (s *CheckStatus) Count(rule string) {
	if s == nil {
		return
	}
	s.RuleCounters[rule]++
}

// RecordOrigin records that edge `derived` was produced from the edge
// sequence `from` (in application order), appending to any prior record for
// the same derived edge so a chain of rewrites is preserved end-to-end.
func (s *CheckStatus) RecordOrigin(derived string, from []string) {
	if s == nil {
		return
	}
	s.EdgeOrigins[derived] = append(append([]string{}, s.EdgeOrigins[derived]...), from...)
}

// Report renders the textual status report of spec §7: verdict, algorithm,
// counters, elapsed time, and the witness if any.
func (s *CheckStatus) Report() string {
	if s == nil {
		return "<nil status>"
	}
	var verdict string
	switch {
	case !s.Finished:
		verdict = "check not finished"
	case s.Controllable:
		verdict = "controllable"
	default:
		verdict = "not controllable"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "verdict: %s\n", verdict)
	fmt.Fprintf(&b, "algorithm: %s\n", s.Algorithm)
	fmt.Fprintf(&b, "timeout: %t\n", s.Timeout)
	fmt.Fprintf(&b, "elapsed: %s\n", s.ElapsedTime)

	rules := make([]string, 0, len(s.RuleCounters))
	for r := range s.RuleCounters {
		rules = append(rules, r)
	}
	sort.Strings(rules)
	for _, r := range rules {
		fmt.Fprintf(&b, "  rule[%s]: %d\n", r, s.RuleCounters[r])
	}

	if s.Witness != nil {
		fmt.Fprintf(&b, "witness: %s\n", s.Witness.String())
	}

	return b.String()
}
