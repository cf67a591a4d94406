package reformat

import (
	"errors"
	"fmt"
)

var (
	// ErrOddLength matches any *OddLengthError.
	ErrOddLength = errors.New("odd length")
	// ErrInvalidFormat matches any *InvalidFormatError.
	ErrInvalidFormat = errors.New("invalid output format")
)

// OddLengthError is returned when normalized hex input cannot be split into byte pairs.
type OddLengthError struct {
	Normalized string
}

func (e *OddLengthError) Error() string {
	return fmt.Sprintf("invalid input: length of input string is not even (%d characters after normalization)", len(e.Normalized))
}

func (e *OddLengthError) Is(target error) bool {
	return target == ErrOddLength
}

// InvalidFormatError is returned for an output format selector that is not supported.
type InvalidFormatError struct {
	Selector string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format: %q (valid options: %s)", e.Selector, SupportedFormats())
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
