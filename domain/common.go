package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrUnknownBackend = errors.New("unknown store backend")
)
