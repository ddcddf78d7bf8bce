package stnu

import "errors"

// ErrNilGraph indicates a nil *graph.Graph was passed to a checker entry
// point.
var ErrNilGraph = errors.New("stnu: nil graph")
