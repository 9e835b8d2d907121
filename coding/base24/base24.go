// Package base24 implements the base-24 product key codec.
// It converts between non-negative integers and dash-grouped key strings
// over the 24-character alphabet used by Remote Desktop Services licensing,
// which excludes characters that can be confused (0, O, 1, I, 5, S).
package base24

import (
	"math/big"
	"strings"
)

// StdAlphabet is the standard base24 alphabet used for encoding and decoding.
// Index 0 maps to 'B'; the ordering is fixed and consensus-critical.
var StdAlphabet = "BCDFGHJKMPQRTVWXY2346789"

// groupSize is the number of characters per dash-separated block.
const groupSize = 5

// Pre-computed constants for better performance
var (
	bigInt0  = big.NewInt(0)
	bigInt24 = big.NewInt(24)
)

// StdEncoder represents a base24 encoder for product key encoding operations.
// It renders a non-negative integer as base24 digits, left-padded with the
// first alphabet character to a minimum width, then grouped with dashes.
type StdEncoder struct {
	encodeMap [24]byte // Lookup table for fast encoding of values to characters
	alphabet  string   // The alphabet used for encoding
	Error     error    // Error field for storing encoding errors
}

// NewStdEncoder creates a new base24 encoder using the standard alphabet.
// Initializes the encoding lookup table for efficient character mapping.
func NewStdEncoder() *StdEncoder {
	e := &StdEncoder{alphabet: StdAlphabet}
	copy(e.encodeMap[:], StdAlphabet)
	return e
}

// Encode encodes the given non-negative integer using base24 encoding.
// The result is left-padded with the first alphabet character to at least
// minDigits characters and a dash is inserted after every fifth character.
// Negative input sets the Error field and returns an empty string.
func (e *StdEncoder) Encode(n *big.Int, minDigits int) string {
	if e.Error != nil {
		return ""
	}
	if n.Sign() < 0 {
		e.Error = NegativeValueError{}
		return ""
	}

	// Estimate one digit per 4.5 bits of input
	digits := make([]byte, 0, max(minDigits, n.BitLen()*2/9+1))
	rem := new(big.Int)
	v := new(big.Int).Set(n)
	for v.Cmp(bigInt0) > 0 {
		v.DivMod(v, bigInt24, rem)
		digits = append(digits, e.encodeMap[rem.Int64()])
	}
	for len(digits) < minDigits {
		digits = append(digits, e.encodeMap[0])
	}
	reverseBytes(digits)

	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/groupSize)
	for i, c := range digits {
		if i > 0 && i%groupSize == 0 {
			sb.WriteByte('-')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// StdDecoder represents a base24 decoder for product key decoding operations.
// It strips dash separators, validates the key shape and interprets the
// characters as big-endian base24 digits.
type StdDecoder struct {
	decodeMap [256]byte // Lookup table for fast decoding of characters to values
	alphabet  string    // The alphabet used for decoding
	Error     error     // Error field for storing decoding errors
}

// NewStdDecoder creates a new base24 decoder using the standard alphabet.
// Invalid characters are marked with 0xFF for error detection during decoding.
func NewStdDecoder() *StdDecoder {
	d := &StdDecoder{alphabet: StdAlphabet}
	for i := 0; i < 256; i++ {
		d.decodeMap[i] = 0xFF
	}
	for i := 0; i < len(StdAlphabet); i++ {
		d.decodeMap[StdAlphabet[i]] = byte(i)
	}
	return d
}

// Decode decodes the given key string back to an integer. Dashes are
// stripped first; the remaining length must be a multiple of five.
// Returns an InvalidLengthError or InvalidCharacterError on malformed input.
func (d *StdDecoder) Decode(key string) (*big.Int, error) {
	if d.Error != nil {
		return nil, d.Error
	}

	stripped := strings.ReplaceAll(key, "-", "")
	if len(stripped)%groupSize != 0 {
		return nil, InvalidLengthError{Length: len(stripped)}
	}

	n := new(big.Int)
	for i := 0; i < len(stripped); i++ {
		index := d.decodeMap[stripped[i]]
		if index == 0xFF {
			return nil, InvalidCharacterError{Char: rune(stripped[i]), Position: i}
		}
		n.Mul(n, bigInt24)
		n.Add(n, big.NewInt(int64(index)))
	}
	return n, nil
}

// reverseBytes reverses a byte slice in place.
// This is used to correct the order of encoded characters, as the
// encoding loop produces the least significant digit first.
func reverseBytes(b []byte) {
	for i := 0; i < len(b)/2; i++ {
		b[i], b[len(b)-1-i] = b[len(b)-1-i], b[i]
	}
}
