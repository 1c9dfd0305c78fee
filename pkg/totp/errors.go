package totp

import "errors"

var (
	ErrInvalidSecretFormat      = errors.New("secret is not valid base32")
	ErrCryptoBackendUnavailable = errors.New("crypto backend unavailable")
	ErrMissingSecret            = errors.New("missing secret")
	ErrMissingAccountName       = errors.New("missing account name")
	ErrMissingIssuer            = errors.New("missing issuer")
	ErrInvalidSecretLength      = errors.New("invalid secret length")
	ErrFailedToGenerateSecret   = errors.New("failed to generate TOTP secret")
	ErrFailedToGenerateCode     = errors.New("failed to generate TOTP code")
	ErrFailedToVerifyCode       = errors.New("failed to verify TOTP code")
	ErrInvalidWindowRadius      = errors.New("verification window radius must not be negative")
	ErrFailedToEncryptSecret    = errors.New("failed to encrypt TOTP secret")
	ErrFailedToDecryptSecret    = errors.New("failed to decrypt TOTP secret")
	ErrInvalidCipherTooShort    = errors.New("cipher text too short")
	ErrFailedToGenerateAESKey   = errors.New("failed to generate encryption key")
	ErrFailedToLoadAESKey       = errors.New("failed to load encryption key")
	ErrInvalidAESKeyLength      = errors.New("invalid encryption key length")
	ErrEncryptionKeyNotSet      = errors.New("TOTP encryption key not set")
	ErrInvalidRecoveryCodeCount = errors.New("invalid recovery code count, must be greater than 0")
	ErrFailedToGenerateRecovery = errors.New("failed to generate recovery code")
)
