package label

import "errors"

// Sentinel errors for the label package.
var (
	// ErrInconsistent indicates a Conjunction would require a proposition to
	// hold both Positive and Negative simultaneously.
	ErrInconsistent = errors.New("label: inconsistent conjunction")

	// ErrEmptyProposition indicates a literal was constructed with an empty
	// proposition name.
	ErrEmptyProposition = errors.New("label: empty proposition name")
)
