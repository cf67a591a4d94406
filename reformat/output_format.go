package reformat

import "strings"

// OutputFormat selects the transform applied to raw input.
type OutputFormat string

const (
	// OutputFormatHexArray renders hex digit pairs as a C-style array. It is the default.
	OutputFormatHexArray OutputFormat = ""
	OutputFormatBinary   OutputFormat = "bin"
)

var supportedOutputFormats = []OutputFormat{
	OutputFormatHexArray,
	OutputFormatBinary,
}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat reports whether selector names a supported format.
func ParseOutputFormat(selector string) (OutputFormat, bool) {
	for _, f := range supportedOutputFormats {
		if string(f) == selector {
			return f, true
		}
	}
	return "", false
}

// SupportedFormats returns a human readable list of the accepted selectors.
func SupportedFormats() string {
	names := make([]string, 0, len(supportedOutputFormats))
	for _, f := range supportedOutputFormats {
		if f == OutputFormatHexArray {
			names = append(names, `"" (hex array)`)
			continue
		}
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
