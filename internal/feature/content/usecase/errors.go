// Package usecase serves articles and brand data.
package usecase

import "errors"

// ErrUpstream marks failures talking to the content service.
var ErrUpstream = errors.New("content service unavailable")
