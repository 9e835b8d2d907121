package ecc

// InverseError represents an arithmetic failure when a slope denominator
// has no modular inverse. With prime moduli this only happens for a zero
// denominator and indicates corrupted curve parameters or inputs.
type InverseError struct{}

// Error returns a formatted error message describing the failure.
func (InverseError) Error() string {
	return "crypto/ecc: modular inverse of zero denominator"
}

// NegativeScalarError represents an error when a negative scalar is
// passed to scalar multiplication.
type NegativeScalarError struct{}

// Error returns a formatted error message describing the invalid scalar.
func (NegativeScalarError) Error() string {
	return "crypto/ecc: scalar must be non-negative"
}
