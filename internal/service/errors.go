package service

import "errors"

var ErrNotFound = errors.New("not found")

var (
	ErrDecode     = errors.New("decode")
	ErrValidation = errors.New("validation")
)

var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrConflict          = errors.New("conflicting concurrent update")
	ErrPaymentInit       = errors.New("payment initiation failed")
)
