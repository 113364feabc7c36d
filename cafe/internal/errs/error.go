package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUniqueViolation = errors.New("name already taken")
	ErrUnauthorized    = errors.New("bad api key")
)
