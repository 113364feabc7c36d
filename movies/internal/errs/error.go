package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUniqueViolation = errors.New("title already taken")
	ErrExternalLookup  = errors.New("external lookup failed")
)
