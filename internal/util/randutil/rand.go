// Package randutil mints random identifiers in the alphabet the paste
// service uses for keys.
package randutil

import (
	"crypto/rand"
	"math/big"

	"github.com/rs/zerolog/log"
)

const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Identifier lengths as the service mints them.
const (
	PasteKeyLength   = 8
	SessionKeyLength = 32
)

// RandString generates a cryptographically random string of length n
// using an unbiased selection from the alphanum character set.
func RandString(n int) string {
	result := make([]byte, n)
	max := big.NewInt(int64(len(alphanum)))

	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			// Fallback: this should never happen with crypto/rand
			log.Error().Err(err).Msg("crypto/rand failed")
			result[i] = alphanum[0]
			continue
		}
		result[i] = alphanum[num.Int64()]
	}
	return string(result)
}

// PasteKey returns a random paste key.
func PasteKey() string {
	return RandString(PasteKeyLength)
}

// SessionKey returns a random session key.
func SessionKey() string {
	return RandString(SessionKeyLength)
}
