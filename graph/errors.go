package graph

import "errors"

// Sentinel errors for the graph package, mirroring the teacher's
// core/types.go convention: one package-level var per failure class,
// discriminated via errors.Is, never by string comparison.
var (
	// ErrEmptyName indicates a Node or Edge was given an empty name.
	ErrEmptyName = errors.New("graph: name is empty")

	// ErrNodeExists indicates AddNode was called for a name already present.
	ErrNodeExists = errors.New("graph: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeExists indicates AddEdge was called with a name already in use.
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfLoop indicates an edge was constructed with From == To (E1).
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrDuplicateActivation indicates two distinct contingent nodes were
	// registered against the same activation node (spec §4.1 contingent
	// pairing).
	ErrDuplicateActivation = errors.New("graph: activation node already bound to a different contingent node")

	// ErrNotContingent indicates an operation requiring a contingent node
	// (lower/upper-case edge lookups) was given a non-contingent node.
	ErrNotContingent = errors.New("graph: node is not contingent")

	// ErrBadContingentBounds indicates 0 ≤ x < y was violated for a
	// contingent link (E5).
	ErrBadContingentBounds = errors.New("graph: contingent bounds must satisfy 0 <= x < y")

	// ErrDuplicateObserver indicates two distinct nodes were registered as
	// the observer of the same proposition.
	ErrDuplicateObserver = errors.New("graph: proposition already has a different observer")

	// ErrNoZero indicates an operation required the distinguished zero node
	// Z before it was created.
	ErrNoZero = errors.New("graph: zero node not yet present")
)
