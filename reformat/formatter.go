package reformat

import "strings"

// Formatter turns raw input into one output representation.
type Formatter interface {
	Format(raw string) (string, error)
}

// NewFormatter creates a Formatter for the given selector.
func NewFormatter(selector string) (Formatter, error) {
	f, ok := ParseOutputFormat(selector)
	if !ok {
		return nil, &InvalidFormatError{Selector: selector}
	}

	switch f {
	case OutputFormatBinary:
		return binaryFormatter{}, nil
	default:
		return hexArrayFormatter{}, nil
	}
}

type hexArrayFormatter struct{}

func (hexArrayFormatter) Format(raw string) (string, error) {
	return HexToArray(strings.TrimSpace(raw))
}

type binaryFormatter struct{}

func (binaryFormatter) Format(raw string) (string, error) {
	return binaryPrefix + ToBinary(raw), nil
}
