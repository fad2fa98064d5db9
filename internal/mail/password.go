package mail

import (
	"crypto/rand"
	"math/big"
)

// passwordAlphabet is the fixed 70-character set credentials are drawn from.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// DefaultPasswordLength is used when no explicit length is requested.
const DefaultPasswordLength = 12

// GeneratePassword returns a random credential of the given length, each
// character drawn uniformly from passwordAlphabet using crypto/rand.
// Non-positive lengths fall back to DefaultPasswordLength.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}

	max := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
