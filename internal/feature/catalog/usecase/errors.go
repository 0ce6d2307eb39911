package usecase

import "errors"

// ErrShadowNotFound is returned by ShadowRepository when no row matches.
var ErrShadowNotFound = errors.New("product shadow not found")
