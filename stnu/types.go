package stnu

import (
	"time"

	"github.com/jublebi/dynacon/dcctx"
)

// Options configures a checker run, following the teacher's
// DefaultOptions()+WithXxx() functional-option convention.
type Options struct {
	// Timeout bounds wall-clock time for the run (spec §5's cooperative
	// deadline). Zero means no timeout.
	Timeout time.Duration

	// Ctx carries the optional debug sink.
	Ctx dcctx.Context
}

// Option is a functional option for a checker entry point.
type Option func(*Options)

// DefaultOptions returns the zero-value defaults: no timeout, silent
// context.
func DefaultOptions() Options {
	return Options{Ctx: dcctx.Background()}
}

// WithTimeout bounds the run to d wall-clock time.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithContext sets the diagnostic context.
func WithContext(ctx dcctx.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}
