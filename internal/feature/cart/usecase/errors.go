package usecase

import "errors"

var (
	// ErrCartNotFound is returned when the user has no cart, or not the one requested.
	ErrCartNotFound = errors.New("cart not found")
	// ErrLineNotFound is returned when the cart has no such line.
	ErrLineNotFound = errors.New("cart line not found")
)

// msgInvalidFields is the validation message of every cart write.
const msgInvalidFields = "missing or invalid required fields"
