package color

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHex is matched by DecodeErrors raised for colour values.
	ErrInvalidHex = errors.New("color: invalid hex color")
	// ErrInvalidIndex is matched by DecodeErrors raised for baseXX keys.
	ErrInvalidIndex = errors.New("color: invalid base index")
)

// DecodeError reports a colour or index string that is not valid hex.
type DecodeError struct {
	Input  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v %q: %s", e.Unwrap(), e.Input, e.Reason)
}

// Unwrap returns ErrInvalidHex or ErrInvalidIndex.
func (e *DecodeError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidHex
	}
	return e.Err
}

func hexError(input, reason string) error {
	return &DecodeError{Input: input, Reason: reason, Err: ErrInvalidHex}
}

func indexError(input, reason string) error {
	return &DecodeError{Input: input, Reason: reason, Err: ErrInvalidIndex}
}
