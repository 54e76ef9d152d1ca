package tween

import "errors"

var (
	ErrNilTarget        = errors.New("tween: target is nil")
	ErrNilTimeline      = errors.New("tween: timeline is nil")
	ErrUnknownProp      = errors.New("tween: unknown property")
	ErrNegativeDuration = errors.New("tween: negative duration")
	ErrNonFinite        = errors.New("tween: non-finite value")
	ErrInvalidRepeat    = errors.New("tween: invalid repeat count")
	ErrZeroLengthLoop   = errors.New("tween: infinite timeline has zero length")
	ErrAlreadyScheduled = errors.New("tween: timeline already scheduled")
)
