package models

import "fmt"

// OutputFormat selects how command output is written
type OutputFormat string

const (
	// FormatText is human-readable output
	FormatText OutputFormat = "text"

	// FormatJSON is machine-readable output
	FormatJSON OutputFormat = "json"
)

// IsValid checks if the output format is valid
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation of OutputFormat
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat parses a string into an OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid output format: %s (must be text or json)", s)
	}
	return f, nil
}
