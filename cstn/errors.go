package cstn

import "errors"

// ErrNilGraph indicates a nil *graph.Graph was passed to Check.
var ErrNilGraph = errors.New("cstn: nil graph")

// ErrParameterUnachievable indicates CheckLazy's binary search for a
// satisfying ∂ exceeded the horizon bound without finding value(∂)=0
// (spec §4.5 "CSTN-lazy variant").
var ErrParameterUnachievable = errors.New("cstn: lazy parameter unachievable within horizon")
