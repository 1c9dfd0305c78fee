// Package totp is the pure compute core of the two-factor-authentication
// engine: Time-based One-Time Password generation and verification per
// RFC 4226 / RFC 6238, implemented from scratch rather than delegating to a
// third-party OTP library.
//
// The package is deliberately free of I/O. Every operation is a pure
// function of (secret, time step, candidate), which keeps the bit-level
// algorithm testable against the published RFC vectors independent of
// storage or transport. The orchestration around it (enrollment, login,
// persistence) lives in pkg/twofa.
//
// # Layers
//
//   - codec    – base32.go decodes shared secrets through a 5-bit
//     accumulator and encodes fresh random material onto the base32
//     alphabet. Secrets travel as text because authenticator apps expect
//     them that way.
//   - hmac     – hmac.go isolates the keyed-hash primitive behind the
//     HMACEngine interface so an alternate backend can be substituted
//     without touching the truncation or framing logic. SHA1Engine is the
//     RFC 6238 standard default.
//   - otp      – otp.go implements the 8-byte big-endian counter framing,
//     RFC 4226 dynamic truncation and the clock-skew verification window.
//   - secrets  – secret.go, aes256.go and recovery.go cover secure secret
//     generation, AES-256-GCM encryption for secrets at rest and single-use
//     recovery codes.
//   - uri      – uri.go builds the otpauth:// provisioning URI consumed by
//     Google Authenticator, 1Password and compatible apps.
//
// # Usage
//
//	secret, _ := totp.GenerateSecret()
//
//	uri, _ := totp.ProvisioningURI(totp.ProvisioningParams{
//	    Secret:      secret,
//	    AccountName: "alice@example.com",
//	    Issuer:      "LedgerView",
//	})
//	// render uri as a QR code (see pkg/qrcode) and show it once
//
//	ok, _ := totp.Verify(secret, "123456", totp.DefaultWindowRadius)
//
// Codes are deterministic per (secret, time step); verification checks the
// current step plus radius neighbours on each side to absorb clock drift
// between the client and the server. A wrong code is the false branch of
// the boolean return, never an error; errors are reserved for malformed
// secrets (ErrInvalidSecretFormat) and an unavailable crypto backend
// (ErrCryptoBackendUnavailable).
//
// Configuration is read once per process from TOTP_ISSUER and
// TOTP_ENCRYPTION_KEY via the env-aware loader in config.go.
package totp
