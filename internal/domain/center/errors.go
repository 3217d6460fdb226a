package center

import "errors"

var (
	ErrCenterNotFound      = errors.New("center not found")
	ErrCenterNameExists    = errors.New("center name already exists")
	ErrCenterImageNotFound = errors.New("center image not found")
)
