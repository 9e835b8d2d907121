package tskey

import (
	"math/big"

	"github.com/yutian0/lyssa/utils"
)

// SPKPayload builds the 7-byte inner payload of a Service Provider Key:
// the SPK ID as a little-endian integer. The id must fit 56 bits.
func SPKPayload(spkid uint64) ([]byte, error) {
	return utils.BigIntToLE(new(big.Int).SetUint64(spkid), PayloadSize)
}

// LKPPayload builds the 7-byte inner payload of a License Key Pack.
// The 56-bit value packs, from the most significant end: the ten-bit
// channel id, the fourteen-bit count, the constants 2 and 144, and the
// seven-bit version code.
func LKPPayload(chid uint16, count int, version uint64) ([]byte, error) {
	info := uint64(chid)<<46 | uint64(count)<<32 | 2<<18 | 144<<10 | version<<3
	return utils.BigIntToLE(new(big.Int).SetUint64(info), PayloadSize)
}
