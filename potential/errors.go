package potential

import "errors"

// ErrUnknownNode indicates UpdatePotential was asked to anchor at a node
// the potential map does not already cover.
var ErrUnknownNode = errors.New("potential: start node not covered by existing potentials")
