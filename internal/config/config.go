package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/clothyvs/dashboard-backend/internal/model"
	"github.com/clothyvs/dashboard-backend/internal/validator"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"auto"`

	MongoURI            string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase       string        `env:"MONGO_DATABASE" envDefault:"clothyvs"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	SeedAdmin SeedAdmin `envPrefix:"SEED_ADMIN_"`
}

// SeedAdmin is the account the create-admin command provisions when no
// admin with the same email exists yet.
type SeedAdmin struct {
	Name     string     `env:"NAME" envDefault:"Admin" validate:"required"`
	Email    string     `env:"EMAIL" envDefault:"admin@example.com" validate:"required,email,max=255"`
	Password string     `env:"PASSWORD" envDefault:"12345678" validate:"required,min=6,bcrypt_len"`
	Role     model.Role `env:"ROLE" envDefault:"Admin" validate:"required,admin_role"`
}

// Validate checks the seed account before anything touches the store.
func (s SeedAdmin) Validate() error {
	return validator.Struct(s)
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for command entrypoints that cannot continue without config.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
