package totp

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

type Config struct {
	Issuer        string `env:"TOTP_ISSUER" envDefault:"LedgerView"` // Issuer shown in authenticator apps
	EncryptionKey string `env:"TOTP_ENCRYPTION_KEY"`                 // Base64-encoded AES-256 key for secrets at rest
}

// LoadConfig parses the package configuration from environment variables.
// The result is cached for the lifetime of the process.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		err = env.Parse(&cfg)
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
