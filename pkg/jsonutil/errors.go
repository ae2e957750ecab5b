package jsonutil

import (
	"errors"
	"fmt"
)

// ErrInvalidOutput is returned when the unmarshal target is nil
var ErrInvalidOutput = errors.New("jsonutil: output value is nil")

// ErrValueTooLarge is returned when a JSON document exceeds MaxJSONSize
var ErrValueTooLarge = errors.New("jsonutil: value exceeds maximum size")

// wrapError attaches a jsonutil context message to an underlying codec error
func wrapError(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
