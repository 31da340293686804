package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration, constructed once at startup
// and passed by reference into the components that need it. Both token
// secrets are required: a missing secret is a startup failure, never a
// per-request one.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTAccessSecret  string        `env:"JWT_ACCESS_SECRET,  required"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET, required"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL,   default=15m"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL,  default=168h"`
	BcryptCost       int           `env:"BCRYPT_COST,        default=10"`

	Seed bool `env:"SEED_DATABASE, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=inventory_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
