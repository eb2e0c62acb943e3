// errors.go defines sentinel errors for validation failures.
//
// Detailed messages are provided by wrapping these with fmt.Errorf in the
// validation functions.

package validate

import "errors"

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrInputTooLong = errors.New("input too long")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidUnit  = errors.New("invalid unit")
)
