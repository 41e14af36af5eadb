package store

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrCorruptRecord      = errors.New("corrupt record")
)
