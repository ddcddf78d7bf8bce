package cstn

import (
	"time"

	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/status"
)

// defaultMaxCycles is a practical stand-in for spec §4.5's theoretical
// bound "maxWeight * |V|^2 * 3^|P|", which grows too fast to use literally
// as a loop counter for any graph with more than a handful of
// propositions; like the teacher's own bounded loops (tsp/bb.go's
// deadline, not an iteration cap), termination in practice is dominated by
// label-set equality (no rule changes anything), not by reaching this
// count. The cap exists purely as a last-resort guard against a latent
// non-terminating rule interaction.
const defaultMaxCycles = 1 << 20

// Check runs the CSTN DC checker [C] of spec §4.5 to fixpoint: every main
// cycle applies qR0, qR3, and qLP to every edge; termination is detected
// when a full cycle changes no label set (spec's own termination
// criterion). Returns Controllable=false with a Witness the moment qLP
// detects a genuine (unknown-free) negative self-loop.
func Check(g *graph.Graph, opts ...Option) (*status.CheckStatus, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	start := timeNow()
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	maxCycles := cfg.MaxCycles
	if maxCycles <= 0 {
		maxCycles = defaultMaxCycles
	}

	st := status.New(status.CSTNLabelPropagation)

	var deadline time.Time
	useDeadline := cfg.Timeout > 0
	if useDeadline {
		deadline = start.Add(cfg.Timeout)
	}

	for cycle := 0; cycle < maxCycles; cycle++ {
		if useDeadline && timeNow().After(deadline) {
			st.Timeout = true
			st.Finished = false
			st.ElapsedTime = timeNow().Sub(start)
			return st, nil
		}

		changedR0 := applyR0(g, st)
		changedR3 := applyR3(g, st)
		changedLP, witness := applyLP(g, st)

		if witness != nil {
			st.Controllable = false
			st.Finished = true
			st.Witness = witness
			st.ElapsedTime = timeNow().Sub(start)
			return st, nil
		}

		if !changedR0 && !changedR3 && !changedLP {
			st.Controllable = true
			st.Finished = true
			st.ElapsedTime = timeNow().Sub(start)
			return st, nil
		}
	}

	st.Timeout = true
	st.Finished = false
	st.ElapsedTime = timeNow().Sub(start)
	return st, nil
}

func timeNow() time.Time { return time.Now() }
