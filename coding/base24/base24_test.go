package base24

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bigFromDec(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	assert.True(t, ok)
	return n
}

func TestStdEncoder_Encode(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		minDigits int
		expected  string
	}{
		{
			name:      "zero pads to width",
			value:     "0",
			minDigits: 35,
			expected:  "BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB",
		},
		{
			name:      "one",
			value:     "1",
			minDigits: 35,
			expected:  "BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBC",
		},
		{
			name:      "last single digit",
			value:     "23",
			minDigits: 35,
			expected:  "BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBB9",
		},
		{
			name:      "base carry",
			value:     "24",
			minDigits: 35,
			expected:  "BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBCB",
		},
		{
			name:      "two digits repeated",
			value:     "575",
			minDigits: 35,
			expected:  "BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBB99",
		},
		{
			name:      "large value",
			value:     "100000000000000000000",
			minDigits: 35,
			expected:  "BBBBB-BBBBB-BBBBB-BBBBB-G3DG3-893FD-PYKDY",
		},
		{
			name:      "all max digits",
			value:     "2029520581602966642312774964747922070981914394623", // 24^35 - 1
			minDigits: 35,
			expected:  "99999-99999-99999-99999-99999-99999-99999",
		},
		{
			name:      "160 bit maximum",
			value:     "1461501637330902918203684832716283019655932542975", // 2^160 - 1
			minDigits: 35,
			expected:  "2J39C-XVQ9H-2JRXJ-VRPYW-K97PP-4PBJ8-Q623X",
		},
		{
			name:      "short width",
			value:     "1",
			minDigits: 5,
			expected:  "BBBBC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder := NewStdEncoder()
			got := encoder.Encode(bigFromDec(t, tt.value), tt.minDigits)
			assert.Nil(t, encoder.Error)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("negative value", func(t *testing.T) {
		encoder := NewStdEncoder()
		got := encoder.Encode(big.NewInt(-1), 35)
		assert.Equal(t, "", got)
		assert.IsType(t, NegativeValueError{}, encoder.Error)
	})
}

func TestStdDecoder_Decode(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "empty key",
			key:      "",
			expected: "0",
		},
		{
			name:     "all first character",
			key:      "BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB",
			expected: "0",
		},
		{
			name:     "one",
			key:      "BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBC",
			expected: "1",
		},
		{
			name:     "no dashes",
			key:      "BBBBC",
			expected: "1",
		},
		{
			name:     "large value",
			key:      "BBBBB-BBBBB-BBBBB-BBBBB-G3DG3-893FD-PYKDY",
			expected: "100000000000000000000",
		},
		{
			name:     "160 bit maximum",
			key:      "2J39C-XVQ9H-2JRXJ-VRPYW-K97PP-4PBJ8-Q623X",
			expected: "1461501637330902918203684832716283019655932542975",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoder := NewStdDecoder()
			got, err := decoder.Decode(tt.key)
			assert.Nil(t, err)
			assert.Equal(t, 0, got.Cmp(bigFromDec(t, tt.expected)))
		})
	}

	t.Run("invalid length", func(t *testing.T) {
		_, err := NewStdDecoder().Decode("BBBB")
		assert.Equal(t, InvalidLengthError{Length: 4}, err)
	})

	t.Run("invalid length with dashes", func(t *testing.T) {
		_, err := NewStdDecoder().Decode("BBBBB-BBB")
		assert.Equal(t, InvalidLengthError{Length: 8}, err)
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := NewStdDecoder().Decode("BBBBB-BBBAB")
		assert.Equal(t, InvalidCharacterError{Char: 'A', Position: 8}, err)
	})

	t.Run("lowercase rejected", func(t *testing.T) {
		_, err := NewStdDecoder().Decode("bbbbb")
		assert.Equal(t, InvalidCharacterError{Char: 'b', Position: 0}, err)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("decode encode decode", func(t *testing.T) {
		encoder := NewStdEncoder()
		decoder := NewStdDecoder()
		values := []string{
			"0", "1", "23", "24", "575",
			"2029520581602966642312774964747922070981914394623",
			"1461501637330902918203684832716283019655932542975",
			"98776554333221100",
		}
		for _, v := range values {
			n := bigFromDec(t, v)
			key := encoder.Encode(n, 35)
			assert.Nil(t, encoder.Error)
			back, err := decoder.Decode(key)
			assert.Nil(t, err)
			assert.Equal(t, 0, back.Cmp(n))
		}
	})

	t.Run("encode decode encode", func(t *testing.T) {
		encoder := NewStdEncoder()
		decoder := NewStdDecoder()
		keys := []string{
			"BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB-BBBBB",
			"2J39C-XVQ9H-2JRXJ-VRPYW-K97PP-4PBJ8-Q623X",
			"TCQRB-493G9-YJ7JG-9GD3T-H2M82-346WV-3QK6V",
		}
		for _, k := range keys {
			n, err := decoder.Decode(k)
			assert.Nil(t, err)
			assert.Equal(t, k, encoder.Encode(n, 35))
			assert.Nil(t, encoder.Error)
		}
	})
}

func TestAlphabet(t *testing.T) {
	t.Run("fixed alphabet", func(t *testing.T) {
		assert.Equal(t, "BCDFGHJKMPQRTVWXY2346789", StdAlphabet)
		assert.Len(t, StdAlphabet, 24)
	})

	t.Run("no duplicate characters", func(t *testing.T) {
		for i, c := range StdAlphabet {
			assert.Equal(t, i, strings.IndexRune(StdAlphabet, c))
		}
	})
}
