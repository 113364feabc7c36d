package errs

import "github.com/pkg/errors"

var (
	ErrUniqueViolation = errors.New("already exists")
)
