package pid

import "fmt"

// LengthError represents an error when a Product ID is too short for the
// fixed-position SPK ID slices.
type LengthError int

// Error returns a formatted error message describing the invalid length.
func (e LengthError) Error() string {
	return fmt.Sprintf("pid: product id length %d, need at least %d characters", int(e), minLength)
}

// MalformedSPKIDError represents an error when the SPK ID field carved
// out of the Product ID is not a decimal integer.
type MalformedSPKIDError struct {
	Field string // The offending field content
}

// Error returns a formatted error message describing the malformed field.
func (e MalformedSPKIDError) Error() string {
	return fmt.Sprintf("pid: malformed spk id field %q in product id", e.Field)
}
