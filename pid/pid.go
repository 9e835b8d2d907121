// Package pid parses Product IDs and derives the per-PID cipher key.
// A Product ID is the dash-separated identifier supplied by the caller;
// two fixed slices of it carry the decimal SPK ID that binds a Service
// Provider Key to its PID.
package pid

import (
	"crypto/md5"
	"strconv"
	"strings"

	"github.com/yutian0/lyssa/utils"
)

// minLength is the shortest Product ID the fixed-position parser can read.
const minLength = 23

// cipherKeySize is the RC4 key width used to scramble key bodies.
const cipherKeySize = 16

// PID represents a parsed Product ID. Create one with Parse; the zero
// value is not usable.
type PID struct {
	raw       string
	spkid     uint64
	cipherKey [cipherKeySize]byte
}

// Parse validates s and extracts the SPK ID and the cipher key.
// The SPK ID is read from bytes [10,16) and [18,23): the two slices are
// concatenated, split on '-', and the first field is parsed as a decimal
// integer. Returns a LengthError or MalformedSPKIDError on bad input.
func Parse(s string) (*PID, error) {
	if len(s) < minLength {
		return nil, LengthError(len(s))
	}

	combined := s[10:16] + s[18:23]
	field, _, _ := strings.Cut(combined, "-")
	spkid, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return nil, MalformedSPKIDError{Field: field}
	}

	p := &PID{raw: s, spkid: spkid}

	// The cipher key is the first 5 bytes of MD5 over the UTF-16LE
	// rendering of the PID, zero-extended on the right.
	digest := md5.Sum(utils.UTF16LEBytes(s))
	copy(p.cipherKey[:], digest[:5])

	return p, nil
}

// String returns the raw Product ID.
func (p *PID) String() string {
	return p.raw
}

// SPKID returns the decimal SPK ID parsed from the Product ID.
func (p *PID) SPKID() uint64 {
	return p.spkid
}

// CipherKey returns a copy of the 16-byte RC4 key derived from the PID.
func (p *PID) CipherKey() []byte {
	key := make([]byte, cipherKeySize)
	copy(key, p.cipherKey[:])
	return key
}
