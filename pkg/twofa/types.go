package twofa

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Config is the durable per-identity two-factor state.
//
// Enabled == true implies Secret holds a confirmed shared secret; disabling
// clears the secret, so a disabled identity never has usable key material in
// storage. The secret is stored base32-encoded, AES-encrypted when the
// service is configured with an encryption key. RecoveryCodes holds SHA-256
// hashes, never plaintext.
type Config struct {
	Enabled       bool
	Secret        string
	RecoveryCodes []string
	LastUsedStep  int64
}

// PendingEnrollment is the ephemeral association of an identity with an
// unconfirmed secret. It lives only in the PendingStore between start and
// confirm/cancel and must never reach durable storage.
type PendingEnrollment struct {
	IdentityID uuid.UUID `json:"identity_id"`
	Secret     string    `json:"secret"`
	CreatedAt  time.Time `json:"created_at"`
}

// Enrollment is what the UI layer needs to walk a user through setup: the
// plaintext secret for manual entry, the otpauth:// URI and its QR rendering.
// None of it is persisted; the secret is shown once and never again.
type Enrollment struct {
	Secret string
	URI    string
	QRCode string
}

// Storage is the durable-storage collaborator, a per-identity key-value
// store with read-after-write consistency. GetConfig returns
// ErrConfigNotFound when no row exists; UpsertConfig inserts or updates the
// single row for the identity. Storage errors propagate to callers
// unchanged; retry policy lives with the implementation or the caller.
type Storage interface {
	GetConfig(ctx context.Context, identityID uuid.UUID) (*Config, error)
	UpsertConfig(ctx context.Context, identityID uuid.UUID, cfg *Config) error
}

// PendingStore holds at most one PendingEnrollment per identity. Set
// overwrites any prior entry (last writer wins); a ttl of zero means no
// expiry. Implementations treat expiry exactly like an explicit delete.
type PendingStore interface {
	Get(ctx context.Context, identityID uuid.UUID) (*PendingEnrollment, error)
	Set(ctx context.Context, enrollment *PendingEnrollment, ttl time.Duration) error
	Delete(ctx context.Context, identityID uuid.UUID) error
}

// Event identifies a security-posture change emitted to the notification
// collaborator.
type Event string

const (
	EventEnabled  Event = "two_factor.enabled"
	EventDisabled Event = "two_factor.disabled"
)

// Notifier is the fire-and-forget notification collaborator. Delivery
// failures are logged by the service and never fail the triggering
// operation.
type Notifier interface {
	Notify(ctx context.Context, identityID uuid.UUID, event Event) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, identityID uuid.UUID, event Event) error

func (f NotifierFunc) Notify(ctx context.Context, identityID uuid.UUID, event Event) error {
	return f(ctx, identityID, event)
}

// QRRenderer turns a provisioning URI into a displayable image reference.
// The default implementation renders a base64 PNG data URI via pkg/qrcode.
type QRRenderer interface {
	Render(uri string) (string, error)
}

// QRRendererFunc adapts a function to the QRRenderer interface.
type QRRendererFunc func(uri string) (string, error)

func (f QRRendererFunc) Render(uri string) (string, error) {
	return f(uri)
}
