package schedulers

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedPolicy = errors.New("unsupported scheduling policy")
)
