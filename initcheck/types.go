package initcheck

import "github.com/jublebi/dynacon/dcctx"

// Options configures InitAndCheck, following the teacher's
// DefaultOptions()+WithXxx() functional-option convention (dijkstra/types.go).
type Options struct {
	// NormalForm, when true, rewrites every contingent link (A,x,y,C) with
	// x>0 into (A',0,y-x,C) by splitting A, per spec §4.1's "Normal-form
	// option" (required by Morris2014; not used by dispatchability-
	// preserving variants).
	NormalForm bool

	// CSTNHorizonEdges, when true, adds the CSTN-only H-weighted Z->X
	// horizon edges of spec §4.1 ("Horizon"); the 0-weight X->Z edges are
	// added regardless. STNU callers leave this false.
	CSTNHorizonEdges bool

	// Ctx carries the optional debug sink (spec Design Notes).
	Ctx dcctx.Context
}

// Option is a functional option for InitAndCheck.
type Option func(*Options)

// DefaultOptions returns the zero-value defaults: no normal-form rewrite, no
// CSTN horizon edges, silent context.
func DefaultOptions() Options {
	return Options{Ctx: dcctx.Background()}
}

// WithNormalForm enables the contingent normal-form rewrite.
func WithNormalForm() Option {
	return func(o *Options) { o.NormalForm = true }
}

// WithCSTNHorizonEdges enables the CSTN-only horizon-bounding edges.
func WithCSTNHorizonEdges() Option {
	return func(o *Options) { o.CSTNHorizonEdges = true }
}

// WithContext sets the diagnostic context.
func WithContext(ctx dcctx.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}
