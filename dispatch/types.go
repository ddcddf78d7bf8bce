package dispatch

import "github.com/jublebi/dynacon/dcctx"

// Options configures Minimize, following the teacher's
// DefaultOptions()+WithXxx() functional-option convention (also used by
// stnu.Options/initcheck.Options/cstn.Options).
type Options struct {
	// Ctx carries the optional debug sink.
	Ctx dcctx.Context
}

// Option is a functional option for Minimize.
type Option func(*Options)

// DefaultOptions returns the zero-value defaults: silent context.
func DefaultOptions() Options {
	return Options{Ctx: dcctx.Background()}
}

// WithContext sets the diagnostic context.
func WithContext(ctx dcctx.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}
