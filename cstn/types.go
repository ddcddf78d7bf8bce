package cstn

import (
	"time"

	"github.com/jublebi/dynacon/dcctx"
)

// Options configures a Check run, following the teacher's
// DefaultOptions()+WithXxx() functional-option convention (also used by
// stnu.Options/initcheck.Options).
type Options struct {
	// Timeout bounds wall-clock time for the run (spec §5's cooperative
	// deadline). Zero means no timeout.
	Timeout time.Duration

	// MaxCycles overrides the default main-loop bound of spec §4.5
	// ("bounded by maxWeight * |V|^2 * 3^|P|"). Zero selects the default.
	MaxCycles int

	// Ctx carries the optional debug sink.
	Ctx dcctx.Context
}

// Option is a functional option for Check/CheckLazy.
type Option func(*Options)

// DefaultOptions returns the zero-value defaults: no timeout, no cycle
// override, silent context.
func DefaultOptions() Options {
	return Options{Ctx: dcctx.Background()}
}

// WithTimeout bounds the run to d wall-clock time.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithMaxCycles overrides the default termination bound.
func WithMaxCycles(n int) Option {
	return func(o *Options) { o.MaxCycles = n }
}

// WithContext sets the diagnostic context.
func WithContext(ctx dcctx.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}
