package totp

import (
	"crypto/hmac"
	"crypto/sha1"
)

// HMACEngine computes a keyed hash over the HOTP counter message. The code
// generator owns key material and message framing; an engine only runs the
// primitive. Implementations backed by external facilities (an HSM, a remote
// signer) return ErrCryptoBackendUnavailable when the backend cannot be
// reached; callers must propagate that error rather than fall back to a
// weaker hash.
type HMACEngine interface {
	Sum(key, message []byte) ([]byte, error)
}

// SHA1Engine is the default HMACEngine, computing HMAC-SHA1 with the
// platform implementation (RFC 6238 standard algorithm). It never fails.
type SHA1Engine struct{}

func (SHA1Engine) Sum(key, message []byte) ([]byte, error) {
	mac := hmac.New(sha1.New, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}
