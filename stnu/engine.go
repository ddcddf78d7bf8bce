package stnu

import (
	"time"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/potential"
	"github.com/jublebi/dynacon/status"
)

// engine holds the mutable state shared by every algorithm in this
// package for a single invocation: the graph being checked, its current
// potentials, the run's status, and the cooperative deadline. Mirrors the
// teacher's bbEngine (tsp/bb.go): a dedicated struct instead of closures,
// with a sparse deadlineCheck instead of polling every iteration.
type engine struct {
	g    *graph.Graph
	h    map[string]int64
	opts Options
	st   *status.CheckStatus

	useDeadline bool
	deadline    time.Time
	steps       int
}

// newEngine computes initial potentials and returns an engine ready to
// run, or (nil, witness) if the O-graph itself already contains a
// negative cycle — in which case the caller's checker is immediately
// NotDC without running any rule.
func newEngine(g *graph.Graph, alg status.Algorithm, opts Options) (*engine, *status.Witness, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	h, witness, err := potential.SSSPBellmanFordOL(g)
	if err != nil {
		return nil, nil, err
	}
	if witness != nil {
		return nil, witness, nil
	}

	e := &engine{
		g:    g,
		h:    h,
		opts: opts,
		st:   status.New(alg),
	}
	if opts.Timeout > 0 {
		e.useDeadline = true
		e.deadline = timeNow().Add(opts.Timeout)
	}

	return e, nil, nil
}

// timeNow is a seam so the deadline math reads naturally; there is
// nothing to fake in production use.
func timeNow() time.Time { return time.Now() }

// deadlineCheck performs a rare deadline test (every 4096 step events),
// exactly mirroring tsp/bb.go's bbEngine.deadlineCheck.
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return timeNow().After(e.deadline)
}

// applyPotentialUpdate incrementally folds a newly materialized edge
// originating at from into e.h (spec §4.3: "after new edges were
// introduced incident to A"). from's own out-edges now include the new
// edge, so potential.UpdatePotential's forward cascade anchored at from
// picks it up directly, without a full Bellman-Ford recompute.
func (e *engine) applyPotentialUpdate(from string) (*status.Witness, error) {
	h, witness, err := potential.UpdatePotential(e.g, e.h, from)
	if err != nil {
		return nil, err
	}
	if witness != nil {
		return witness, nil
	}
	e.h = h
	return nil, nil
}

// finish stamps elapsed time and returns st.
func (e *engine) finish(start time.Time) *status.CheckStatus {
	e.st.ElapsedTime = timeNow().Sub(start)
	return e.st
}
