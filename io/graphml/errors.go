package graphml

import (
	"fmt"

	"github.com/jublebi/dynacon/dcerr"
)

// malformed wraps dcerr.ErrMalformedInput (spec §7's error-kind taxonomy)
// with parser-specific context, so callers can still discriminate via
// errors.Is(err, dcerr.ErrMalformedInput) regardless of which parsing step
// failed.
func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("graphml: "+format+": %w", append(args, dcerr.ErrMalformedInput)...)
}
