package totp_test

import (
	"crypto/rand"
	"testing"

	"github.com/ledgerview/twofactor/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSecret(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		secret string
		want   []byte
	}{
		// RFC 4648 base32 vectors; padding is tolerated and stripped.
		{"single byte", "MY======", []byte("f")},
		{"two bytes", "MZXQ====", []byte("fo")},
		{"three bytes", "MZXW6===", []byte("foo")},
		{"four bytes", "MZXW6YQ=", []byte("foob")},
		{"five bytes no padding", "MZXW6YTB", []byte("fooba")},
		{"six bytes", "MZXW6YTBOI======", []byte("foobar")},
		{"unpadded", "MZXW6YQ", []byte("foob")},
		{"lowercase", "mzxw6yq", []byte("foob")},
		{"surrounding whitespace", "  MZXW6YQ  ", []byte("foob")},
		{"rfc reference key", "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", []byte("12345678901234567890")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.DecodeSecret(tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSecretInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"padding only", "===="},
		{"digit outside alphabet", "ABC1"},
		{"zero outside alphabet", "ABC0"},
		{"punctuation", "AB-CD"},
		{"non-ascii", "ABCÑ"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := totp.DecodeSecret(tt.secret)
			assert.ErrorIs(t, err, totp.ErrInvalidSecretFormat)
		})
	}
}

func TestDecodeSecretStable(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	first, err := totp.DecodeSecret(secret)
	require.NoError(t, err)
	second, err := totp.DecodeSecret(secret)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeSecret(t *testing.T) {
	t.Parallel()
	raw := make([]byte, 64)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	for _, length := range []int{1, 16, 32, 64} {
		secret, err := totp.EncodeSecret(raw, length)
		require.NoError(t, err)
		assert.Len(t, secret, length)
		assert.Regexp(t, totp.ValidSecretRegex, secret)

		// The same input always maps to the same secret text.
		again, err := totp.EncodeSecret(raw, length)
		require.NoError(t, err)
		assert.Equal(t, secret, again)
	}
}

func TestEncodeSecretInvalidLength(t *testing.T) {
	t.Parallel()
	raw := make([]byte, 8)

	_, err := totp.EncodeSecret(raw, 0)
	assert.ErrorIs(t, err, totp.ErrInvalidSecretLength)

	_, err = totp.EncodeSecret(raw, 9)
	assert.ErrorIs(t, err, totp.ErrInvalidSecretLength)
}

func TestEncodeDecodeConsistency(t *testing.T) {
	t.Parallel()
	// The encoder is a keyspace mapping, not block encoding, so decoding
	// does not recover the input bytes. What matters for the protocol is
	// that generator and verifier decode the same text to the same key.
	raw := make([]byte, totp.DefaultSecretLength)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	secret, err := totp.EncodeSecret(raw, totp.DefaultSecretLength)
	require.NoError(t, err)

	key, err := totp.DecodeSecret(secret)
	require.NoError(t, err)
	assert.Len(t, key, totp.DefaultSecretLength*5/8)
}

func TestGenerateSecret(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, secret, totp.DefaultSecretLength)
	assert.Regexp(t, totp.ValidSecretRegex, secret)

	other, err := totp.GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestGenerateSecretN(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecretN(16)
	require.NoError(t, err)
	assert.Len(t, secret, 16)

	_, err = totp.GenerateSecretN(0)
	assert.ErrorIs(t, err, totp.ErrFailedToGenerateSecret)
}
