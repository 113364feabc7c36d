package errs

import (
	"errors"
)

var (
	ErrDelivery   = errors.New("message delivery failed")
	ErrFeedFailed = errors.New("post feed fetch failed")
)
