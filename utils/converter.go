// Package utils provides conversion helpers shared by the key codec,
// the PID parser and the signature engine.
package utils

import (
	"math/big"
	"unicode/utf16"
)

// BigIntToLE serializes n into exactly width little-endian bytes.
// Returns a NegativeValueError if n is negative and an OverflowError
// if the value does not fit into width bytes.
func BigIntToLE(n *big.Int, width int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, NegativeValueError{}
	}
	if n.BitLen() > width*8 {
		return nil, OverflowError{Bits: n.BitLen(), Width: width}
	}
	buf := make([]byte, width)
	n.FillBytes(buf)
	reverseBytes(buf)
	return buf, nil
}

// LEToBigInt interprets b as an unsigned little-endian integer.
// The input slice is not modified.
func LEToBigInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// UTF16LEBytes re-encodes s as UTF-16 little-endian code units.
// Each ASCII byte becomes two bytes: the value followed by zero.
func UTF16LEBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		buf[2*i] = byte(u)
		buf[2*i+1] = byte(u >> 8)
	}
	return buf
}

// reverseBytes reverses a byte slice in place.
func reverseBytes(b []byte) {
	for i := 0; i < len(b)/2; i++ {
		b[i], b[len(b)-1-i] = b[len(b)-1-i], b[i]
	}
}
