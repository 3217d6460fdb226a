package ptsession

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrDuplicateSession = errors.New("session already logged with this idempotency key")
)
