package totp

import (
	"crypto/rand"
	"errors"
)

// DefaultSecretLength is the number of base32 characters in a generated
// secret. At 5 bits per character this is 160 bits of entropy, matching the
// RFC 4226 recommendation for HMAC-SHA1 key strength.
const DefaultSecretLength = 32

// GenerateSecret creates a new shared secret of DefaultSecretLength
// characters from a cryptographically secure random source.
func GenerateSecret() (string, error) {
	return GenerateSecretN(DefaultSecretLength)
}

// GenerateSecretN creates a new shared secret of the given length.
func GenerateSecretN(length int) (string, error) {
	if length < 1 {
		return "", errors.Join(ErrFailedToGenerateSecret, ErrInvalidSecretLength)
	}
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecret, err)
	}
	secret, err := EncodeSecret(raw, length)
	if err != nil {
		return "", errors.Join(ErrFailedToGenerateSecret, err)
	}
	return secret, nil
}
