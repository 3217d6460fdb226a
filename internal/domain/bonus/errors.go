package bonus

import "errors"

var (
	ErrRuleNotFound = errors.New("bonus rule not found")
)
