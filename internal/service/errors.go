package service

import "errors"

var (
	ErrValidation        = errors.New("invalid input")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrAuthFailed        = errors.New("authentication failed")
)
