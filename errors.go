package lyssa

import (
	"errors"

	"github.com/yutian0/lyssa/crypto/ecc"
	"github.com/yutian0/lyssa/crypto/tskey"
)

var (
	// ErrSPKMismatch is returned when a caller-supplied Service Provider
	// Key does not verify against the Product ID.
	ErrSPKMismatch = errors.New("lyssa: service provider key does not match product id")

	// ErrLicensePairing is returned when only one of Count and License
	// is present in a request.
	ErrLicensePairing = errors.New("lyssa: count and license must be provided together")
)

// ExitCode maps an error from Process to the conventional process exit
// code: 0 for success, 1 for caller-side misuse, 2 for algorithmic
// failures (mismatched SPK, exhausted key generation, broken arithmetic).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var (
		attempts AttemptsError
		entropy  EntropyError
		cipher   CipherError
		inverse  ecc.InverseError
		scalar   ecc.NegativeScalarError
	)
	if errors.Is(err, ErrSPKMismatch) ||
		errors.As(err, &attempts) || errors.As(err, &entropy) || errors.As(err, &cipher) ||
		errors.As(err, &inverse) || errors.As(err, &scalar) {
		return 2
	}
	return 1
}

// Re-exported engine error types, so callers matching on failure kinds
// do not need to import the engine package.
type (
	AttemptsError = tskey.AttemptsError
	EntropyError  = tskey.EntropyError
	CipherError   = tskey.CipherError
)
