// Package twofa orchestrates two-factor enrollment and login on top of the
// pure TOTP core in pkg/totp.
//
// The enrollment flow is a small state machine per identity: a start call
// provisions a fresh secret and parks it, unconfirmed, in a PendingStore; a
// confirm call verifies the user's first code against that secret and only
// then promotes it to durable storage and emits the enabled event. A wrong
// code leaves the pending slot intact for a retry; cancellation or TTL
// expiry discards it without any durable trace. At most one enrollment is
// in flight per identity: a second start overwrites the first, whose
// secret becomes worthless because it was never persisted.
//
// The login flow loads the confirmed secret and verifies the submitted code
// within the clock-skew window. The boolean result gates session completion
// in the calling layer; this package does not manage sessions.
//
// Collaborators are injected as narrow interfaces: Storage (a per-identity
// KV with one upsert), PendingStore (memory or Redis), Notifier
// (fire-and-forget posture-change events) and QRRenderer (defaults to
// pkg/qrcode). Secrets can be encrypted at rest with WithEncryptionKey, and
// WithReplayGuard adds a last-accepted-step high-water mark so a captured
// code cannot be replayed within its window.
//
// # Usage
//
//	svc := twofa.NewService(twofa.NewPostgresStorage(pool),
//	    twofa.WithIssuer("LedgerView"),
//	    twofa.WithPendingStore(twofa.NewRedisPendingStore(rdb)),
//	    twofa.WithEncryptionKey(key),
//	)
//
//	enrollment, err := svc.StartEnrollment(ctx, userID, "alice@example.com")
//	// show enrollment.QRCode, then:
//	ok, err := svc.ConfirmEnrollment(ctx, userID, submittedCode)
//
// Verification mismatches are reported as false returns, never as errors;
// ErrNoEnrollmentInProgress and ErrTwoFactorNotEnabled mark caller logic
// errors, and storage failures propagate unchanged.
package twofa
