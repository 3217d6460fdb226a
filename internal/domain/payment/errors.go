package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrInvalidPeriod   = errors.New("invalid payment period")
)
