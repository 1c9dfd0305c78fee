package totp

import "strings"

// secretAlphabet is the standard base32 character set (RFC 4648): A-Z then 2-7.
const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// secretAlphabetIndex maps an uppercase base32 character to its 5-bit value,
// or -1 for characters outside the alphabet.
var secretAlphabetIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(secretAlphabet); i++ {
		idx[secretAlphabet[i]] = int8(i)
	}
	return idx
}()

// DecodeSecret converts a base32-encoded secret into raw key bytes.
// Input is trimmed, upper-cased and stripped of trailing padding before
// decoding, so secrets copied by hand out of authenticator apps survive the
// usual mangling. Each character contributes 5 bits to an accumulator; a byte
// is emitted once 8 bits are buffered and any trailing partial bits are
// discarded. Returns ErrInvalidSecretFormat for characters outside A-Z2-7.
func DecodeSecret(secret string) ([]byte, error) {
	secret = strings.ToUpper(strings.TrimSpace(secret))
	secret = strings.TrimRight(secret, "=")
	if secret == "" {
		return nil, ErrInvalidSecretFormat
	}

	key := make([]byte, 0, len(secret)*5/8)
	var buffer, bits uint
	for i := 0; i < len(secret); i++ {
		v := secretAlphabetIndex[secret[i]]
		if v < 0 {
			return nil, ErrInvalidSecretFormat
		}
		buffer = buffer<<5 | uint(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			key = append(key, byte(buffer>>bits))
		}
	}
	if len(key) == 0 {
		return nil, ErrInvalidSecretFormat
	}
	return key, nil
}

// EncodeSecret maps raw bytes onto the base32 alphabet, one character per
// input byte, producing a secret of exactly length characters. This is a
// keyspace mapping rather than RFC 4648 block encoding: each character
// carries the low 5 bits of its source byte, so a 32-character secret drawn
// from a secure random source holds 160 bits of entropy. The only contract
// is that DecodeSecret of the result is stable and shared by generator and
// verifier.
func EncodeSecret(raw []byte, length int) (string, error) {
	if length < 1 || length > len(raw) {
		return "", ErrInvalidSecretLength
	}
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(secretAlphabet[int(raw[i])%len(secretAlphabet)])
	}
	return sb.String(), nil
}
