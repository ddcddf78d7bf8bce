// Package dcerr defines the cross-cutting error kinds of spec §7, shared by
// every package that can abort a top-level call: MalformedInput (parser or
// well-definition failure), Overflow (arithmetic exceeding the saturating
// sentinel in a context where that is fatal, e.g. horizon computation), and
// ContractViolation (the dispatchability minimizer invoked on a
// non-dispatchable graph, or a nil graph). NotDC and Timeout are
// deliberately NOT here: spec §7 classifies them as logical outcomes
// carried in status.CheckStatus, never as Go errors.
package dcerr

import "errors"

var (
	// ErrMalformedInput indicates the input graph fails a well-definition
	// check that cannot be repaired (spec §4.1).
	ErrMalformedInput = errors.New("dcerr: malformed input")

	// ErrOverflow indicates an arithmetic computation (e.g. the horizon)
	// could not be represented even after saturation.
	ErrOverflow = errors.New("dcerr: arithmetic overflow")

	// ErrContractViolation indicates a precondition contract was violated:
	// the dispatchability minimizer was given a non-dispatchable graph, or a
	// nil graph was passed where one is required.
	ErrContractViolation = errors.New("dcerr: contract violation")
)
