package twofa

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerview/twofactor/pkg/logger"
	"github.com/ledgerview/twofactor/pkg/qrcode"
	"github.com/ledgerview/twofactor/pkg/totp"
)

// Manager defines the two-factor enrollment and login operations.
type Manager interface {
	StartEnrollment(ctx context.Context, identityID uuid.UUID, accountName string) (*Enrollment, error)
	ConfirmEnrollment(ctx context.Context, identityID uuid.UUID, code string) (bool, error)
	CancelEnrollment(ctx context.Context, identityID uuid.UUID) error
	VerifyLogin(ctx context.Context, identityID uuid.UUID, code string) (bool, error)
	Disable(ctx context.Context, identityID uuid.UUID) error
	Enabled(ctx context.Context, identityID uuid.UUID) (bool, error)
	RegenerateRecoveryCodes(ctx context.Context, identityID uuid.UUID, count int) ([]string, error)
	UseRecoveryCode(ctx context.Context, identityID uuid.UUID, code string) (bool, error)
}

type service struct {
	storage       Storage
	pending       PendingStore
	notifier      Notifier
	qr            QRRenderer
	logger        *slog.Logger
	issuer        string
	windowRadius  int
	pendingTTL    time.Duration
	encryptionKey []byte
	replayGuard   bool
	recoveryCount int
	now           func() time.Time
}

// Option configures a two-factor service during construction.
type Option func(*service)

// WithLogger configures the logger. Only identity IDs, event names and
// match/no-match booleans are ever logged; secret material never is.
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithIssuer configures the issuer shown in authenticator apps.
func WithIssuer(issuer string) Option {
	return func(s *service) {
		s.issuer = issuer
	}
}

// WithPendingStore configures where unconfirmed enrollments are held.
// Defaults to an in-process memory store; use the Redis store when the
// service runs on more than one instance.
func WithPendingStore(store PendingStore) Option {
	return func(s *service) {
		s.pending = store
	}
}

// WithPendingTTL configures how long an unconfirmed enrollment survives
// before expiry makes it indistinguishable from a cancellation. Zero
// disables expiry.
func WithPendingTTL(ttl time.Duration) Option {
	return func(s *service) {
		s.pendingTTL = ttl
	}
}

// WithWindowRadius configures how many adjacent time steps are accepted on
// either side of "now" during verification. The default of 3 tolerates
// ±90 seconds of clock drift; widening it extends the replay-acceptance
// span of a captured code.
func WithWindowRadius(radius int) Option {
	return func(s *service) {
		s.windowRadius = radius
	}
}

// WithNotifier configures the fire-and-forget notification collaborator
// invoked on enable and disable.
func WithNotifier(notifier Notifier) Option {
	return func(s *service) {
		s.notifier = notifier
	}
}

// WithQRRenderer overrides how the provisioning URI is turned into a
// displayable image reference.
func WithQRRenderer(renderer QRRenderer) Option {
	return func(s *service) {
		s.qr = renderer
	}
}

// WithEncryptionKey enables AES-256-GCM encryption of secrets at rest. The
// key must be exactly 32 bytes (see totp.DecodeEncryptionKey).
func WithEncryptionKey(key []byte) Option {
	return func(s *service) {
		s.encryptionKey = key
	}
}

// WithReplayGuard enables the last-accepted-step high-water mark: a login
// code matching a time step at or below the last accepted one is rejected,
// so a captured code cannot be replayed within its window.
func WithReplayGuard() Option {
	return func(s *service) {
		s.replayGuard = true
	}
}

// WithRecoveryCodeCount configures how many recovery codes
// RegenerateRecoveryCodes issues by default.
func WithRecoveryCodeCount(count int) Option {
	return func(s *service) {
		s.recoveryCount = count
	}
}

// WithClock overrides the time source, primarily for tests exercising the
// verification window.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a two-factor manager backed by the given durable
// storage.
func NewService(storage Storage, opts ...Option) Manager {
	s := &service{
		storage:       storage,
		pending:       NewMemoryPendingStore(),
		qr:            QRRendererFunc(func(uri string) (string, error) { return qrcode.GenerateDataURI(uri, 0) }),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		issuer:        "LedgerView",
		windowRadius:  3,
		pendingTTL:    10 * time.Minute,
		recoveryCount: 10,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// StartEnrollment provisions a fresh secret and holds it, unconfirmed, in
// the pending store. Nothing touches durable storage until the identity
// proves possession of the secret via ConfirmEnrollment. A repeated start
// overwrites the prior pending secret: at most one enrollment is in flight
// per identity.
func (s *service) StartEnrollment(ctx context.Context, identityID uuid.UUID, accountName string) (*Enrollment, error) {
	cfg, err := s.storage.GetConfig(ctx, identityID)
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}
	if cfg != nil && cfg.Enabled {
		return nil, ErrAlreadyEnabled
	}

	secret, err := totp.GenerateSecret()
	if err != nil {
		return nil, err
	}

	uri, err := totp.ProvisioningURI(totp.ProvisioningParams{
		Secret:      secret,
		AccountName: accountName,
		Issuer:      s.issuer,
	})
	if err != nil {
		return nil, err
	}

	qr, err := s.qr.Render(uri)
	if err != nil {
		return nil, errors.Join(ErrFailedToRenderQRCode, err)
	}

	if err := s.pending.Set(ctx, &PendingEnrollment{
		IdentityID: identityID,
		Secret:     secret,
		CreatedAt:  s.now(),
	}, s.pendingTTL); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "two-factor enrollment started", logger.IdentityID(identityID))

	return &Enrollment{Secret: secret, URI: uri, QRCode: qr}, nil
}

// ConfirmEnrollment verifies the first code against the pending secret. On
// success the secret is promoted to durable storage, the pending slot is
// cleared and the enabled event is emitted. On a wrong code the pending
// slot stays intact so the user can retry within the same attempt.
func (s *service) ConfirmEnrollment(ctx context.Context, identityID uuid.UUID, code string) (bool, error) {
	pe, err := s.pending.Get(ctx, identityID)
	if err != nil {
		if errors.Is(err, ErrPendingNotFound) {
			return false, ErrNoEnrollmentInProgress
		}
		return false, err
	}

	ok, err := totp.VerifyAt(pe.Secret, code, s.windowRadius, s.now())
	if err != nil {
		return false, err
	}
	if !ok {
		s.logger.InfoContext(ctx, "two-factor enrollment code rejected", logger.IdentityID(identityID), logger.Match(false))
		return false, nil
	}

	stored, err := s.sealSecret(pe.Secret)
	if err != nil {
		return false, err
	}

	if err := s.storage.UpsertConfig(ctx, identityID, &Config{
		Enabled: true,
		Secret:  stored,
	}); err != nil {
		return false, err
	}

	if err := s.pending.Delete(ctx, identityID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear pending enrollment", logger.IdentityID(identityID), logger.Error(err))
	}

	s.logger.InfoContext(ctx, "two-factor authentication enabled", logger.IdentityID(identityID), logger.Match(true))
	s.notify(ctx, identityID, EventEnabled)

	return true, nil
}

// CancelEnrollment discards the pending secret without persisting anything.
func (s *service) CancelEnrollment(ctx context.Context, identityID uuid.UUID) error {
	if _, err := s.pending.Get(ctx, identityID); err != nil {
		if errors.Is(err, ErrPendingNotFound) {
			return ErrNoEnrollmentInProgress
		}
		return err
	}
	if err := s.pending.Delete(ctx, identityID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "two-factor enrollment cancelled", logger.IdentityID(identityID))
	return nil
}

// VerifyLogin checks a login-time code against the confirmed secret. A
// wrong code is the false branch of the boolean, never an error; calling
// this for an identity without confirmed 2FA is a caller logic error
// surfaced as ErrTwoFactorNotEnabled.
func (s *service) VerifyLogin(ctx context.Context, identityID uuid.UUID, code string) (bool, error) {
	cfg, err := s.enabledConfig(ctx, identityID)
	if err != nil {
		return false, err
	}

	secret, err := s.openSecret(cfg.Secret)
	if err != nil {
		return false, err
	}

	step, ok, err := totp.FindMatchingStep(secret, code, s.windowRadius, s.now())
	if err != nil {
		return false, err
	}

	if ok && s.replayGuard {
		if step <= cfg.LastUsedStep {
			s.logger.WarnContext(ctx, "two-factor code replay rejected", logger.IdentityID(identityID), logger.Step(step))
			return false, nil
		}
		cfg.LastUsedStep = step
		if err := s.storage.UpsertConfig(ctx, identityID, cfg); err != nil {
			return false, err
		}
	}

	s.logger.InfoContext(ctx, "two-factor login verification", logger.IdentityID(identityID), logger.Match(ok))
	return ok, nil
}

// Disable clears the secret and recovery codes durably. Irreversible
// without re-enrollment; lowers the account security posture, so the
// disabled event is emitted.
func (s *service) Disable(ctx context.Context, identityID uuid.UUID) error {
	if _, err := s.enabledConfig(ctx, identityID); err != nil {
		return err
	}

	if err := s.storage.UpsertConfig(ctx, identityID, &Config{Enabled: false}); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "two-factor authentication disabled", logger.IdentityID(identityID))
	s.notify(ctx, identityID, EventDisabled)
	return nil
}

// Enabled reports whether the identity has confirmed 2FA.
func (s *service) Enabled(ctx context.Context, identityID uuid.UUID) (bool, error) {
	cfg, err := s.storage.GetConfig(ctx, identityID)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return false, nil
		}
		return false, err
	}
	return cfg.Enabled && cfg.Secret != "", nil
}

// RegenerateRecoveryCodes replaces all recovery codes for the identity and
// returns the plaintext codes. They are shown once; storage keeps only
// hashes.
func (s *service) RegenerateRecoveryCodes(ctx context.Context, identityID uuid.UUID, count int) ([]string, error) {
	cfg, err := s.enabledConfig(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if count < 1 {
		count = s.recoveryCount
	}
	codes, err := totp.GenerateRecoveryCodes(count)
	if err != nil {
		return nil, err
	}

	hashes := make([]string, len(codes))
	for i, code := range codes {
		hashes[i] = totp.HashRecoveryCode(code)
	}
	cfg.RecoveryCodes = hashes

	if err := s.storage.UpsertConfig(ctx, identityID, cfg); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "two-factor recovery codes regenerated", logger.IdentityID(identityID), "count", count)
	return codes, nil
}

// UseRecoveryCode consumes a single-use recovery code. On a match the code
// is removed from storage before true is returned, so it can never be used
// twice.
func (s *service) UseRecoveryCode(ctx context.Context, identityID uuid.UUID, code string) (bool, error) {
	cfg, err := s.enabledConfig(ctx, identityID)
	if err != nil {
		return false, err
	}

	for i, hashed := range cfg.RecoveryCodes {
		if totp.VerifyRecoveryCode(code, hashed) {
			cfg.RecoveryCodes = append(cfg.RecoveryCodes[:i], cfg.RecoveryCodes[i+1:]...)
			if err := s.storage.UpsertConfig(ctx, identityID, cfg); err != nil {
				return false, err
			}
			s.logger.InfoContext(ctx, "two-factor recovery code consumed", logger.IdentityID(identityID), "remaining", len(cfg.RecoveryCodes))
			return true, nil
		}
	}

	s.logger.InfoContext(ctx, "two-factor recovery code rejected", logger.IdentityID(identityID), logger.Match(false))
	return false, nil
}

// enabledConfig loads the config and enforces the enabled-with-secret
// invariant shared by all post-enrollment operations.
func (s *service) enabledConfig(ctx context.Context, identityID uuid.UUID) (*Config, error) {
	cfg, err := s.storage.GetConfig(ctx, identityID)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return nil, ErrTwoFactorNotEnabled
		}
		return nil, err
	}
	if !cfg.Enabled || cfg.Secret == "" {
		return nil, ErrTwoFactorNotEnabled
	}
	return cfg, nil
}

// sealSecret encrypts the secret for storage when an encryption key is
// configured; otherwise the base32 text is stored as-is.
func (s *service) sealSecret(secret string) (string, error) {
	if len(s.encryptionKey) == 0 {
		return secret, nil
	}
	return totp.EncryptSecret(secret, s.encryptionKey)
}

// openSecret reverses sealSecret.
func (s *service) openSecret(stored string) (string, error) {
	if len(s.encryptionKey) == 0 {
		return stored, nil
	}
	return totp.DecryptSecret(stored, s.encryptionKey)
}

// notify emits an event to the notification collaborator without ever
// failing the calling operation. The event is delivered asynchronously with
// a context detached from the request lifetime.
func (s *service) notify(ctx context.Context, identityID uuid.UUID, event Event) {
	if s.notifier == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.notifier.Notify(ctx, identityID, event); err != nil {
			s.logger.WarnContext(ctx, "two-factor notification failed", logger.IdentityID(identityID), logger.Event(string(event)), logger.Error(err))
		}
	}()
}
