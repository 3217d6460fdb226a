package member

import "errors"

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberPhoneExists  = errors.New("member with this phone already exists in center")
	ErrNoRemainingSession = errors.New("no remaining sessions on package")
)
