package effect

import "errors"

var (
	ErrInvalidIterations = errors.New("effect: iterations must be -1 or at least 1")
	ErrInvalidOption     = errors.New("effect: invalid option")
	ErrEmptyKind         = errors.New("effect: kind is empty")
)
