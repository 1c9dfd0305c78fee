package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// GenerateRecoveryCodes creates cryptographically secure single-use backup
// codes. Each code is 16 hexadecimal characters (64 bits of entropy),
// displayed in XXXX-XXXX-XXXX-XXXX groups for readability.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidRecoveryCodeCount
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		raw := make([]byte, 8)
		if _, err := rand.Read(raw); err != nil {
			return nil, errors.Join(ErrFailedToGenerateRecovery, err)
		}
		hexCode := fmt.Sprintf("%X", raw)
		codes[i] = fmt.Sprintf("%s-%s-%s-%s", hexCode[0:4], hexCode[4:8], hexCode[8:12], hexCode[12:16])
	}
	return codes, nil
}

// normalizeRecoveryCode strips separators and whitespace so users may enter
// codes with or without the display grouping.
func normalizeRecoveryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	return strings.ReplaceAll(code, "-", "")
}

// HashRecoveryCode creates a SHA-256 hash of the normalized code for secure
// storage. Plaintext codes are shown to the user once and never persisted.
func HashRecoveryCode(code string) string {
	hash := sha256.Sum256([]byte(normalizeRecoveryCode(code)))
	return hex.EncodeToString(hash[:])
}

// VerifyRecoveryCode compares a candidate code against a stored hash in
// constant time, so comparison latency reveals nothing about where a
// mismatch occurs.
func VerifyRecoveryCode(code, hashedCode string) bool {
	computedHash := HashRecoveryCode(code)

	return subtle.ConstantTimeCompare(
		[]byte(computedHash),
		[]byte(hashedCode),
	) == 1
}
