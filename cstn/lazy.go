package cstn

import (
	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/satmath"
	"github.com/jublebi/dynacon/status"
)

// LazyWeight is a piecewise-linear function of the symbolic parameter ∂
// (spec §4.5's "CSTN-lazy variant"). Eval evaluates the weight at a
// concrete ∂.
type LazyWeight interface {
	Eval(delta int64) int64
}

// Const is a LazyWeight with no ∂-dependence.
type Const int64

// Eval returns the constant value, ignoring delta.
func (c Const) Eval(int64) int64 { return int64(c) }

// Linear is the piece "A*∂ + B".
type Linear struct {
	A, B int64
}

// Eval returns A*delta + B, saturating per satmath's arithmetic.
func (l Linear) Eval(delta int64) int64 {
	return satmath.Add(satmath.Mul(l.A, delta), l.B)
}

// Sum is the piecewise sum of its terms, preserving piecewise structure by
// deferring evaluation (spec: "sum... over lazy weights preserve the
// piecewise structure").
type Sum struct {
	Terms []LazyWeight
}

// Eval returns the saturating sum of every term's value at delta.
func (s Sum) Eval(delta int64) int64 {
	var total int64
	for _, t := range s.Terms {
		total = satmath.Add(total, t.Eval(delta))
	}
	return total
}

// Max is the piecewise max of its terms.
type Max struct {
	Terms []LazyWeight
}

// Eval returns the largest term's value at delta, or 0 for an empty Max.
func (m Max) Eval(delta int64) int64 {
	if len(m.Terms) == 0 {
		return 0
	}
	best := m.Terms[0].Eval(delta)
	for _, t := range m.Terms[1:] {
		if v := t.Eval(delta); v > best {
			best = v
		}
	}
	return best
}

// SolveZero finds a ∂ in [0, horizon] with w.Eval(∂) == 0 (spec §4.5: "the
// checker solves value(∂)=0 — binary search for Sum/Max pieces; direct
// ratio for linear Piece"). Returns ErrParameterUnachievable if no such ∂
// exists within the horizon bound, including when w is not monotonic
// enough for binary search to apply (the Linear fast path handles the
// exact, closed-form case directly; Sum/Max assume the overall piecewise
// function is monotonic non-decreasing in ∂ over [0, horizon], which holds
// whenever every Linear leaf has A>=0, the case the checker constructs).
func SolveZero(w LazyWeight, horizon int64) (int64, error) {
	if lin, ok := w.(Linear); ok {
		if lin.A == 0 {
			if lin.B == 0 {
				return 0, nil
			}
			return 0, ErrParameterUnachievable
		}
		if lin.B%lin.A != 0 {
			return 0, ErrParameterUnachievable
		}
		delta := -lin.B / lin.A
		if delta < 0 || delta > horizon {
			return 0, ErrParameterUnachievable
		}
		return delta, nil
	}

	lo, hi := int64(0), horizon
	if w.Eval(lo) > 0 {
		return 0, ErrParameterUnachievable
	}
	if w.Eval(hi) < 0 {
		return 0, ErrParameterUnachievable
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if w.Eval(mid) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if w.Eval(lo) != 0 {
		return 0, ErrParameterUnachievable
	}
	return lo, nil
}

// CheckLazy runs Check repeatedly against a graph whose edge named
// paramEdge carries a ∂-dependent weight (weightOf), re-solving ∂ each
// time a negative loop through paramEdge is found and restarting from the
// freshly re-initialized graph, per spec §4.5's reset-and-restart
// protocol. horizon caps the search per spec's "fixed upper bound on ∂".
//
// init is called once per attempt to rebuild the graph from scratch at the
// given ∂ (CSTN-lazy always restarts from the initialized graph, never
// continues mutating the previous attempt's state).
func CheckLazy(paramEdge string, weightOf LazyWeight, horizon int64, init func(delta int64) (*graph.Graph, error), opts ...Option) (*status.CheckStatus, int64, error) {
	delta := int64(0)
	for attempt := 0; attempt <= int(horizon)+1 && attempt < 1<<16; attempt++ {
		g, err := init(delta)
		if err != nil {
			return nil, delta, err
		}

		st, err := Check(g, opts...)
		if err != nil {
			return nil, delta, err
		}
		if st.Controllable || st.Timeout {
			return st, delta, nil
		}

		involvesParam := false
		if st.Witness != nil {
			for _, ce := range st.Witness.Edges {
				if ce.Name == paramEdge {
					involvesParam = true
					break
				}
			}
		}
		if !involvesParam {
			return st, delta, nil
		}

		next, err := SolveZero(weightOf, horizon)
		if err != nil {
			return st, delta, err
		}
		if next == delta {
			// No progress possible; report the last verdict as-is.
			return st, delta, nil
		}
		delta = next
	}

	return nil, delta, ErrParameterUnachievable
}
