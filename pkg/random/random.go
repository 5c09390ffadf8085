package random

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/google/uuid"
)

// URL-safe alphabet without lookalike characters (0/O, 1/l/I).
const alphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// String returns a random string of length n drawn from an unambiguous
// alphanumeric alphabet, suitable for tokens and codes shown to humans.
func String(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	out := make([]byte, n)
	maxIdx := big.NewInt(int64(len(alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, maxIdx)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// MustString is String for call sites where entropy failure is fatal.
func MustString(n int) string {
	s, err := String(n)
	if err != nil {
		panic(err)
	}
	return s
}

// Hex returns n random bytes hex-encoded (2n characters).
func Hex(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Int returns a uniform random integer in [0, max). max must be positive.
func Int(max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}
