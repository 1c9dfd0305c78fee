package totp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// Digits is the number of decimal digits in a generated code.
	Digits = 6
	// Period is the time-step length in seconds (RFC 6238 standard). Both
	// sides of the protocol must agree on it for codes to align.
	Period = 30
	// DefaultWindowRadius is the number of adjacent time steps checked on
	// either side of "now" during verification to tolerate clock drift.
	DefaultWindowRadius = 1

	codeModulus = 1_000_000 // 10^Digits
)

var defaultEngine HMACEngine = SHA1Engine{}

// TimeStep returns the 30-second epoch index containing t.
func TimeStep(t time.Time) int64 {
	return t.Unix() / Period
}

// GenerateCode derives the 6-digit code for the given secret and time step
// using the RFC 4226 algorithm with the default HMAC-SHA1 engine.
// Deterministic: the same secret and step always produce the same code.
func GenerateCode(secret string, step int64) (string, error) {
	return GenerateCodeWithEngine(defaultEngine, secret, step)
}

// GenerateCodeWithEngine is GenerateCode with a caller-supplied HMAC backend.
func GenerateCodeWithEngine(engine HMACEngine, secret string, step int64) (string, error) {
	key, err := DecodeSecret(secret)
	if err != nil {
		return "", err
	}

	// RFC 4226 message framing: the counter is an 8-byte big-endian integer.
	var counter [8]byte
	binary.BigEndian.PutUint64(counter[:], uint64(step))

	digest, err := engine.Sum(key, counter[:])
	if err != nil {
		return "", errors.Join(ErrCryptoBackendUnavailable, err)
	}

	// Dynamic truncation: the low nibble of the final digest byte selects a
	// 4-byte slice, whose top bit is masked off to yield a 31-bit value.
	offset := digest[len(digest)-1] & 0x0f
	value := uint32(digest[offset]&0x7f)<<24 |
		uint32(digest[offset+1])<<16 |
		uint32(digest[offset+2])<<8 |
		uint32(digest[offset+3])

	return fmt.Sprintf("%06d", value%codeModulus), nil
}

// GenerateCodeAt derives the code for the time step containing t.
func GenerateCodeAt(secret string, t time.Time) (string, error) {
	return GenerateCode(secret, TimeStep(t))
}

// GenerateCurrentCode derives the code for the current time step.
func GenerateCurrentCode(secret string) (string, error) {
	return GenerateCodeAt(secret, time.Now())
}

// Verify checks a candidate code against the secret for the current time
// step and its neighbours within radius steps on either side.
//
// A candidate that is not exactly six decimal digits (after trimming
// surrounding whitespace) fails verification with a false return, not an
// error: garbled user input is an expected outcome, while a malformed secret
// or an unavailable crypto backend is reported as an error.
func Verify(secret, candidate string, radius int) (bool, error) {
	return VerifyAt(secret, candidate, radius, time.Now())
}

// VerifyAt is Verify evaluated at an explicit point in time.
func VerifyAt(secret, candidate string, radius int, t time.Time) (bool, error) {
	_, ok, err := FindMatchingStep(secret, candidate, radius, t)
	return ok, err
}

// FindMatchingStep reports which time step within the window, if any, the
// candidate code matches. Offsets are evaluated in ascending order from
// -radius to +radius and the first match wins. Callers that track a
// last-accepted step for replay protection need the matched step; plain
// verification should use Verify or VerifyAt.
func FindMatchingStep(secret, candidate string, radius int, t time.Time) (int64, bool, error) {
	if radius < 0 {
		return 0, false, ErrInvalidWindowRadius
	}

	candidate = strings.TrimSpace(candidate)
	if !isCode(candidate) {
		return 0, false, nil
	}

	step := TimeStep(t)
	for offset := -int64(radius); offset <= int64(radius); offset++ {
		expected, err := GenerateCode(secret, step+offset)
		if err != nil {
			return 0, false, err
		}
		if expected == candidate {
			return step + offset, true, nil
		}
	}
	return 0, false, nil
}

// isCode reports whether s is exactly Digits ASCII decimal digits.
func isCode(s string) bool {
	if len(s) != Digits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
