// Package tskey implements generation and validation of Terminal Services
// product keys. A key carries a 7-byte payload and a packed Schnorr-style
// signature over it, scrambled with RC4 under a key derived from the
// Product ID, and rendered through the base24 codec.
package tskey

import (
	"crypto/rand"
	"crypto/rc4"
	"crypto/sha1"
	"encoding/binary"
	"io"
	"math/big"

	"github.com/yutian0/lyssa/coding/base24"
	"github.com/yutian0/lyssa/crypto/ecc"
	"github.com/yutian0/lyssa/pid"
	"github.com/yutian0/lyssa/utils"
)

const (
	// PayloadSize is the width of the signed inner payload.
	PayloadSize = 7

	// sigSize is the width of the packed (h, s) signature.
	sigSize = 14

	// bodySize is the scrambled payload-plus-signature buffer. Only the
	// first 20 bytes survive into the textual key; the final byte is
	// reconstructed as zero during validation.
	bodySize = PayloadSize + sigSize

	// keySize is the number of scrambled bytes encoded into the key.
	keySize = 20

	// keyDigits is the base24 width of a product key: seven
	// dash-separated groups of five characters.
	keyDigits = 35

	// coordSize is the fixed little-endian width of a serialized point
	// coordinate inside the challenge hash preimage.
	coordSize = 48

	// maxAttempts bounds the signing retry loop.
	maxAttempts = 1000
)

// h occupies the low 35 bits of the packed signature, s the 69 bits
// above it. Signing only accepts s strictly below the mask: the all-ones
// value collides with its own slicing during validation.
var (
	hMask    = new(big.Int).SetUint64(0x7FFFFFFFF)
	sMask, _ = new(big.Int).SetString("1FFFFFFFFFFFFFFFFF", 16)

	// spkidMask extracts the SPK ID from the low 41 payload bits.
	spkidMask = new(big.Int).SetUint64(1<<41 - 1)

	bigInt1 = big.NewInt(1)
)

// entropy is the nonce source for signing. Tests substitute a failing
// reader; everything else uses the operating system CSPRNG.
var entropy io.Reader = rand.Reader

// Kind selects which curve parameter set a key is bound to.
type Kind int

// The two key kinds.
const (
	SPK Kind = iota // Service Provider Key (License Server ID)
	LKP             // License Key Pack
)

// Curve returns the curve parameter set for the kind.
func (k Kind) Curve() *ecc.Curve {
	if k == LKP {
		return ecc.LKP()
	}
	return ecc.SPK()
}

// String returns the conventional short name of the kind.
func (k Kind) String() string {
	if k == LKP {
		return "lkp"
	}
	return "spk"
}

// Generate signs payload on the kind's curve and returns the textual key.
// Each attempt draws a fresh nonce; an attempt is discarded when the
// nonce point degenerates, when s does not fit its 69-bit field, or when
// the freshly assembled key fails self-validation. After 1000 attempts
// Generate gives up with an AttemptsError.
func Generate(p *pid.PID, kind Kind, payload []byte) (string, error) {
	if len(payload) != PayloadSize {
		return "", PayloadSizeError(len(payload))
	}
	curve := kind.Curve()
	nMinus1 := new(big.Int).Sub(curve.N, bigInt1)
	encoder := base24.NewStdEncoder()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		c, err := rand.Int(entropy, nMinus1)
		if err != nil {
			return "", EntropyError{Err: err}
		}
		c.Add(c, bigInt1)

		R, err := curve.ScalarMult(curve.G(), c)
		if err != nil {
			return "", err
		}
		if R.IsInfinity() {
			continue
		}

		h, err := challenge(payload, R)
		if err != nil {
			return "", err
		}

		// s = (c − priv·h) mod n
		s := new(big.Int).Mul(curve.Priv, new(big.Int).SetUint64(h))
		s.Sub(c, s)
		s.Mod(s, curve.N)
		if s.Cmp(sMask) >= 0 {
			continue
		}

		// sigdata = (s << 35) | (h & mask35)
		sig := new(big.Int).Lsh(s, 35)
		sig.Or(sig, new(big.Int).SetUint64(h))
		sigBytes, err := utils.BigIntToLE(sig, sigSize)
		if err != nil {
			return "", err
		}

		body := make([]byte, 0, bodySize)
		body = append(body, payload...)
		body = append(body, sigBytes...)
		scrambled, err := scramble(p, body)
		if err != nil {
			return "", err
		}

		key := encoder.Encode(utils.LEToBigInt(scrambled[:keySize]), keyDigits)
		if encoder.Error != nil {
			return "", encoder.Error
		}
		if !Validate(p, kind, key) {
			continue
		}
		return key, nil
	}
	return "", AttemptsError(maxAttempts)
}

// Validate reports whether key is a well-formed product key of the given
// kind for the Product ID. Malformed input never panics or errors; it
// simply validates as false. For SPK keys the payload must additionally
// carry the SPK ID parsed from the PID.
func Validate(p *pid.PID, kind Kind, key string) bool {
	n, err := base24.NewStdDecoder().Decode(key)
	if err != nil {
		return false
	}
	// A 20-byte body always fits 21 bytes; longer input is malformed.
	buf, err := utils.BigIntToLE(n, bodySize)
	if err != nil {
		return false
	}
	body, err := scramble(p, buf)
	if err != nil {
		return false
	}

	payload := body[:PayloadSize]
	sig := utils.LEToBigInt(body[PayloadSize:])
	h := new(big.Int).And(sig, hMask).Uint64()
	s := new(big.Int).Rsh(sig, 35)
	s.And(s, sMask)

	curve := kind.Curve()
	hK, err := curve.ScalarMult(curve.K(), new(big.Int).SetUint64(h))
	if err != nil {
		return false
	}
	sG, err := curve.ScalarMult(curve.G(), s)
	if err != nil {
		return false
	}
	R, err := curve.Add(hK, sG)
	if err != nil || R.IsInfinity() {
		return false
	}

	ht, err := challenge(payload, R)
	if err != nil || ht != h {
		return false
	}

	if kind == SPK {
		spkid := utils.LEToBigInt(payload)
		return spkid.And(spkid, spkidMask).Uint64() == p.SPKID()
	}
	return true
}

// challenge hashes payload ‖ Rx ‖ Ry with SHA-1 and squeezes the first
// eight digest bytes into the 35-bit challenge: the low doubleword joined
// with the top three bits of the following doubleword.
func challenge(payload []byte, R ecc.Point) (uint64, error) {
	rx, err := utils.BigIntToLE(R.X, coordSize)
	if err != nil {
		return 0, err
	}
	ry, err := utils.BigIntToLE(R.Y, coordSize)
	if err != nil {
		return 0, err
	}

	d := sha1.New()
	d.Write(payload)
	d.Write(rx)
	d.Write(ry)
	md := d.Sum(nil)

	lo := binary.LittleEndian.Uint32(md[0:4])
	hi := binary.LittleEndian.Uint32(md[4:8])
	return uint64(hi>>29)<<32 | uint64(lo), nil
}

// scramble applies the PID-keyed RC4 stream to b. Encryption and
// decryption are the same operation.
func scramble(p *pid.PID, b []byte) ([]byte, error) {
	cipher, err := rc4.NewCipher(p.CipherKey())
	if err != nil {
		return nil, CipherError{Err: err}
	}
	out := make([]byte, len(b))
	cipher.XORKeyStream(out, b)
	return out, nil
}
