// Package usecase implements address management.
package usecase

import "errors"

var (
	// ErrAddressNotFound is returned when an address does not exist or belongs to someone else.
	ErrAddressNotFound = errors.New("address not found")

	// ErrDuplicateAddress is returned when the user already has the same address.
	ErrDuplicateAddress = errors.New("address already registered")
)
