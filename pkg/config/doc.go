// Package config loads environment-based configuration structs for the
// two-factor subsystem (pg.Config, redis.Config, totp.Config) via
// github.com/caarlos0/env, reading an optional .env file first.
//
// Each struct type is parsed once per process and cached; MustLoad panics
// on failure for configuration the process cannot run without.
package config
