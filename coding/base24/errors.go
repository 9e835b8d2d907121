package base24

import "fmt"

// NegativeValueError represents an error when a negative integer is
// passed to the encoder. Product keys only carry unsigned values.
type NegativeValueError struct{}

// Error returns a formatted error message describing the invalid input.
func (NegativeValueError) Error() string {
	return "coding/base24: cannot encode negative integer"
}

// InvalidLengthError represents an error when the key length is invalid.
// After dash stripping, a key must consist of five-character blocks.
type InvalidLengthError struct {
	Length int // The invalid input length after dash stripping
}

// Error returns a formatted error message describing the invalid length.
func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("coding/base24: invalid key length %d, must be a multiple of 5", e.Length)
}

// InvalidCharacterError represents an error when a character outside the
// base24 alphabet is found in the key.
type InvalidCharacterError struct {
	Char     rune // The invalid character that was found
	Position int  // The position of the invalid character in the dash-stripped key
}

// Error returns a formatted error message describing the invalid character.
func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("coding/base24: invalid character %q at position %d", e.Char, e.Position)
}
