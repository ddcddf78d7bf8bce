// Package dcctx implements the spec Design Notes' guidance to "thread the
// debug level and an optional logger through a Context argument rather than
// through process-wide singletons". The teacher (lvlath) carries no logging
// dependency anywhere in its tree — it is a deliberately zero-dependency
// library — so dynacon's checkers follow the same texture: an explicit,
// passed-in sink rather than a package-level logger. See DESIGN.md for why
// no ecosystem logging library was wired here.
package dcctx

import (
	"fmt"
	"io"
)

// Level controls how much diagnostic detail Logf emits.
type Level int

const (
	// Silent emits nothing.
	Silent Level = iota
	// Info emits high-level progress (algorithm start/stop, verdict).
	Info
	// Verbose additionally emits per-rule-application detail, matching the
	// CLI's "-v" flag (spec §6).
	Verbose
)

// Context carries an optional diagnostic sink and its verbosity level
// through a checker invocation. The zero Context is silent and safe to use.
type Context struct {
	Level Level
	Sink  io.Writer
}

// Background returns a silent Context with no sink, analogous to
// context.Background() for this package's narrower purpose.
func Background() Context {
	return Context{}
}

// WithSink returns a Context writing at the given level to w.
func WithSink(w io.Writer, level Level) Context {
	return Context{Level: level, Sink: w}
}

// Logf writes a formatted line to the sink if c's level is at least min and
// the sink is non-nil; otherwise it is a no-op.
func (c Context) Logf(min Level, format string, args ...interface{}) {
	if c.Sink == nil || c.Level < min {
		return
	}
	fmt.Fprintf(c.Sink, format+"\n", args...)
}
