// Package lyssa generates and verifies the two product key kinds used by
// Remote Desktop Services licensing: Service Provider Keys (License
// Server IDs) and License Key Packs. Keys encode a 7-byte payload and an
// elliptic-curve signature, scrambled with RC4 under a key derived from
// the Product ID and rendered as dash-grouped base24 text.
package lyssa

import (
	"github.com/yutian0/lyssa/crypto/tskey"
	"github.com/yutian0/lyssa/pid"
)

const Version = "1.0.0"

// GenerateSPK generates a fresh Service Provider Key for the Product ID.
func GenerateSPK(productID string) (string, error) {
	p, err := pid.Parse(productID)
	if err != nil {
		return "", err
	}
	payload, err := tskey.SPKPayload(p.SPKID())
	if err != nil {
		return "", err
	}
	return tskey.Generate(p, tskey.SPK, payload)
}

// ValidateSPK reports whether key is a Service Provider Key issued for
// the Product ID. Malformed input validates as false.
func ValidateSPK(productID, key string) bool {
	p, err := pid.Parse(productID)
	if err != nil {
		return false
	}
	return tskey.Validate(p, tskey.SPK, key)
}

// ValidateLKP reports whether key is a License Key Pack issued for the
// Product ID. Key packs are independent of any Service Provider Key.
func ValidateLKP(productID, key string) bool {
	p, err := pid.Parse(productID)
	if err != nil {
		return false
	}
	return tskey.Validate(p, tskey.LKP, key)
}
