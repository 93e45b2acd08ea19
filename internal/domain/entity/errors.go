package entity

import (
	"errors"
	"fmt"
)

// MinStrands is the fewest detected strands an inspection can work with.
const MinStrands = 3

// ExpectedStrands is the number of terminals on the connector.
const ExpectedStrands = 4

var (
	// ErrMaskEmpty is returned for a mask without foreground pixels.
	ErrMaskEmpty = errors.New("mask has no foreground pixels")

	// ErrDetectionInsufficient is returned when fewer than MinStrands strands were detected.
	ErrDetectionInsufficient = errors.New("not enough strands detected")

	// ErrStrandCountUnsupported is returned when more than ExpectedStrands strands were detected.
	ErrStrandCountUnsupported = errors.New("unsupported number of strands")
)

// DetectionError carries the strand count behind a detection failure.
type DetectionError struct {
	Found int
	Err   error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("%v: found %d, want %d", e.Err, e.Found, ExpectedStrands)
}

func (e *DetectionError) Unwrap() error {
	return e.Err
}
