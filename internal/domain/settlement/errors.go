package settlement

import "errors"

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrAlreadyPaid        = errors.New("settlement already paid")
	ErrInvalidTransition  = errors.New("invalid settlement status transition")
)
