package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	GinMode   string `env:"GIN_MODE,   default=debug"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	JWTSecret string `env:"JWT_SECRET, default=default-secret-key-change-me"`

	DB    DBConfig
	Admin AdminConfig
}

type DBConfig struct {
	// Driver selects the SQL backend: mysql or postgres.
	Driver   string `env:"DB_DRIVER,   default=mysql"`
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=3306"`
	User     string `env:"DB_USER,     default=taskflow"`
	Password string `env:"DB_PASSWORD, default=taskflow"`
	Name     string `env:"DB_NAME,     default=taskflow_db"`
}

// AdminConfig describes the bootstrap administrator seeded into an empty
// database at startup.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	Password string `env:"ADMIN_PASSWORD, default=password123"`
}

// Load reads configuration from the environment, honouring a local .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
