package dispatch

import "errors"

// ErrNilGraph is returned when Minimize is called with a nil graph.
var ErrNilGraph = errors.New("dispatch: nil graph")
