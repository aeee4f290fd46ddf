package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

type Config struct {
	Port           string
	MongoURL       string
	DatabaseName   string
	SecretKey      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	RequestTimeout time.Duration
	Environment    string
	LogLevel       string
	SeedData       bool
}

// LoadEnvFile loads path into the process environment. It reports whether the
// file was found; variables already set are not overridden.
func LoadEnvFile(path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		return false, errors.Wrapf(err, "load %s", path)
	}
	return true, nil
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	tokenTTL, err := cast.ToDurationE(get("EXPIRES_IN", "24h"))
	if err != nil {
		return nil, errors.Wrap(err, "EXPIRES_IN")
	}
	timeout, err := cast.ToDurationE(get("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, errors.Wrap(err, "REQUEST_TIMEOUT")
	}
	seed, err := cast.ToBoolE(get("SEED_DATA", "false"))
	if err != nil {
		return nil, errors.Wrap(err, "SEED_DATA")
	}

	cfg := &Config{
		Port:           get("PORT", "8000"),
		MongoURL:       get("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName:   get("DATABASE_NAME", "food_ordering"),
		SecretKey:      getenv("SECRET_KEY"),
		TokenTTL:       tokenTTL,
		AllowedOrigins: splitList(get("ALLOWED_ORIGINS", "http://localhost:5000,http://127.0.0.1:5000")),
		RequestTimeout: timeout,
		Environment:    get("APP_ENV", "development"),
		LogLevel:       get("LOG_LEVEL", ""),
		SeedData:       seed,
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("EXPIRES_IN must be positive")
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
