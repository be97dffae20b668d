package flex

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. CallbackError wraps a measure or
// baseline failure with the offending node's handle.
var (
	// ErrStaleHandle means an operation referenced a freed or recycled node.
	// This is always a caller bug; the operation does not mutate state.
	ErrStaleHandle = errors.New("flex: stale handle")

	// ErrInvariantViolation means arena bookkeeping was about to be broken,
	// such as freeing a node that still has children.
	ErrInvariantViolation = errors.New("flex: invariant violation")

	// ErrNotConverged means flexible length resolution did not settle within
	// the iteration cap. It indicates conflicting constraints, not a bug in
	// the caller's tree.
	ErrNotConverged = errors.New("flex: flexible lengths did not converge")
)

// CallbackError reports a measure or baseline capability that failed during
// CalculateLayout. The call is aborted and no computed data is committed.
type CallbackError struct {
	Handle Handle
	Err    error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("flex: callback failed for node %v: %v", e.Handle, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

func staleHandleError(h Handle) error {
	return fmt.Errorf("%w: %v", ErrStaleHandle, h)
}
