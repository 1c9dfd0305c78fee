// Package pg provides PostgreSQL connection plumbing for the two-factor
// storage backend: a retrying pgxpool connector, env-based configuration,
// goose migration support and a health probe.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    // terminate: the storage backend is unreachable
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    // schema is out of date and could not be fixed
//	}
//
//	storage := twofa.NewPostgresStorage(pool)
//
// Healthcheck(pool) returns a func(context.Context) error suitable for
// readiness probes.
package pg
