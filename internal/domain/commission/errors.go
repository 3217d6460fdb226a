package commission

import "errors"

var (
	// ErrNoMatchingTier is a handled outcome, not a failure: no active
	// tier bracket contains the requested revenue for the given scope.
	// Callers must surface it instead of defaulting to a zero rate.
	ErrNoMatchingTier = errors.New("no commission tier matches the given revenue")

	ErrTierNotFound = errors.New("commission tier not found")
)
