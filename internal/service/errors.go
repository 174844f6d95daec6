package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks input the caller must fix; handlers map it to 400.
var ErrValidation = errors.New("invalid input")

// ErrNotFound marks a lookup of a record that does not exist.
var ErrNotFound = errors.New("record not found")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
