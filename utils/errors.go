package utils

import "fmt"

// NegativeValueError represents an error when a negative integer is
// passed to a serializer that only handles unsigned values.
type NegativeValueError struct{}

// Error returns a formatted error message describing the failure.
func (NegativeValueError) Error() string {
	return "utils: cannot serialize negative integer"
}

// OverflowError represents an error when an integer does not fit into
// the requested fixed-width buffer.
type OverflowError struct {
	Bits  int // The bit length of the value
	Width int // The requested width in bytes
}

// Error returns a formatted error message describing the overflow.
func (e OverflowError) Error() string {
	return fmt.Sprintf("utils: %d-bit value does not fit into %d bytes", e.Bits, e.Width)
}
