package initcheck

import (
	"fmt"

	"github.com/jublebi/dynacon/dcerr"
)

// Sentinel errors wrapped around dcerr.ErrMalformedInput / dcerr.ErrOverflow
// for errors.Is discrimination at both the specific and general level.
var (
	// ErrSharedActivation indicates one activation node is claimed by two
	// distinct contingent nodes (spec §4.1 "Contingent pairing").
	ErrSharedActivation = fmt.Errorf("initcheck: activation node shared by two contingent nodes: %w", dcerr.ErrMalformedInput)

	// ErrBadContingentBounds indicates a contingent link fails 0 <= x < y.
	ErrBadContingentBounds = fmt.Errorf("initcheck: contingent link violates 0 <= x < y: %w", dcerr.ErrMalformedInput)

	// ErrInconsistentLabel indicates an edge's labeled value could not be
	// repaired into consistency with its endpoints/observers (WD1/WD3).
	ErrInconsistentLabel = fmt.Errorf("initcheck: labeled value cannot be made consistent: %w", dcerr.ErrMalformedInput)

	// ErrHorizonOverflow indicates the horizon H = maxWeight*(|V|-1) is not
	// representable even after saturation.
	ErrHorizonOverflow = fmt.Errorf("initcheck: horizon is not representable: %w", dcerr.ErrOverflow)
)
