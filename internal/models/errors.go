package models

import "errors"

var (
	// ErrInvalidAmount rejects a zero or negative operation amount.
	// Validation happens before any store or cache access.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAccountNotFound indicates no account exists for the given
	// key. Accounts are never created implicitly.
	ErrAccountNotFound = errors.New("account not found")
)
