package twofa

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage persists two-factor configurations in the
// two_factor_configs table (see migrations/). One row per identity, written
// with a single upsert, which is all the transactional scope the flows
// need.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage wraps an existing connection pool (see pkg/pg for
// connection helpers).
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

func (p *PostgresStorage) GetConfig(ctx context.Context, identityID uuid.UUID) (*Config, error) {
	const query = `
		SELECT enabled, secret, recovery_codes, last_used_step
		FROM two_factor_configs
		WHERE identity_id = $1`

	var cfg Config
	err := p.pool.QueryRow(ctx, query, identityID).Scan(
		&cfg.Enabled,
		&cfg.Secret,
		&cfg.RecoveryCodes,
		&cfg.LastUsedStep,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (p *PostgresStorage) UpsertConfig(ctx context.Context, identityID uuid.UUID, cfg *Config) error {
	const query = `
		INSERT INTO two_factor_configs (identity_id, enabled, secret, recovery_codes, last_used_step, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (identity_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			secret = EXCLUDED.secret,
			recovery_codes = EXCLUDED.recovery_codes,
			last_used_step = EXCLUDED.last_used_step,
			updated_at = now()`

	_, err := p.pool.Exec(ctx, query, identityID, cfg.Enabled, cfg.Secret, cfg.RecoveryCodes, cfg.LastUsedStep)
	return err
}
