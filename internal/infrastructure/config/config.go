package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// InsecureSecretDefault is the placeholder signing secret applied when
// JWT_SECRET is unset. Startup must flag it as unsafe for production.
const InsecureSecretDefault = "dev_secret"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type JWTConfig struct {
	Secret        string `env:"JWT_SECRET,         default=dev_secret"`
	Algorithm     string `env:"JWT_ALGO,           default=HS256"`
	ExpireMinutes int    `env:"JWT_EXPIRE_MINUTES, default=43200"` // 30 days
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=project_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SeedConfig controls the bootstrap admin account created at startup when
// missing.
type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@demo.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=Admin12345"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// TokenLifetime returns the configured token lifetime as a duration.
func (c *JWTConfig) TokenLifetime() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

// InsecureSecret reports whether the signing secret is still the insecure
// placeholder default.
func (c *JWTConfig) InsecureSecret() bool {
	return c.Secret == InsecureSecretDefault
}
