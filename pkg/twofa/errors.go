package twofa

import "errors"

var (
	// ErrNoEnrollmentInProgress is returned when confirm or cancel is called
	// for an identity without a prior start. Caller logic error, not a user
	// mistake.
	ErrNoEnrollmentInProgress = errors.New("no two-factor enrollment in progress")
	// ErrTwoFactorNotEnabled is returned when a login verification or other
	// post-enrollment operation targets an identity without confirmed 2FA.
	ErrTwoFactorNotEnabled = errors.New("two-factor authentication not enabled")
	// ErrAlreadyEnabled is returned when enrollment is started for an
	// identity that already has confirmed 2FA.
	ErrAlreadyEnabled = errors.New("two-factor authentication already enabled")
	// ErrConfigNotFound is returned by Storage implementations when no
	// configuration row exists for the identity.
	ErrConfigNotFound = errors.New("two-factor configuration not found")
	// ErrPendingNotFound is returned by PendingStore implementations when no
	// pending enrollment exists for the identity.
	ErrPendingNotFound = errors.New("pending enrollment not found")
	// ErrFailedToRenderQRCode wraps QR collaborator failures during
	// enrollment start.
	ErrFailedToRenderQRCode = errors.New("failed to render enrollment QR code")
)
