package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// AESKeySize is the required key size for AES-256 (256 bits / 8 = 32 bytes).
const AESKeySize = 32

// EncryptSecret encrypts a shared secret with AES-256-GCM for durable
// storage. The random nonce is prepended to the ciphertext and the result is
// returned base64-encoded.
func EncryptSecret(plainText string, key []byte) (string, error) {
	if len(key) != AESKeySize {
		return "", errors.Join(ErrFailedToEncryptSecret, ErrInvalidAESKeyLength)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	cipherText := aesGCM.Seal(nonce, nonce, []byte(plainText), nil)
	return base64.StdEncoding.EncodeToString(cipherText), nil
}

// DecryptSecret reverses EncryptSecret. Expects the base64-encoded
// nonce-prefixed ciphertext produced by that function.
func DecryptSecret(cipherTextBase64 string, key []byte) (string, error) {
	if len(key) != AESKeySize {
		return "", errors.Join(ErrFailedToDecryptSecret, ErrInvalidAESKeyLength)
	}

	cipherText, err := base64.StdEncoding.DecodeString(cipherTextBase64)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(cipherText) < nonceSize {
		return "", errors.Join(ErrFailedToDecryptSecret, ErrInvalidCipherTooShort)
	}
	nonce, cipherText := cipherText[:nonceSize], cipherText[nonceSize:]

	plainText, err := aesGCM.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	return string(plainText), nil
}

// GenerateEncryptionKey creates a new random 32-byte key suitable for
// AES-256 encryption.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateAESKey, err)
	}
	return key, nil
}

// GenerateEncodedEncryptionKey creates a new random AES-256 key and returns
// it base64-encoded, ready for the TOTP_ENCRYPTION_KEY environment variable.
func GenerateEncodedEncryptionKey() (string, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// DecodeEncryptionKey decodes a base64-encoded AES-256 key from the
// configuration and validates its length.
func DecodeEncryptionKey(cfg Config) ([]byte, error) {
	if cfg.EncryptionKey == "" {
		return nil, errors.Join(ErrFailedToLoadAESKey, ErrEncryptionKeyNotSet)
	}

	key, err := base64.StdEncoding.DecodeString(cfg.EncryptionKey)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadAESKey, err)
	}

	if len(key) != AESKeySize {
		return nil, errors.Join(ErrFailedToLoadAESKey, ErrInvalidAESKeyLength)
	}

	return key, nil
}
