package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	JWT    JWTConfig
	Bandit BanditConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	// SecretKey signs admin tokens. When empty the admin routes are not
	// mounted.
	SecretKey string
}

// BanditConfig carries the engine-level hyperparameter fallbacks.
type BanditConfig struct {
	DefaultSubtype      string
	DefaultEpsilon      float64
	DefaultTotalSamples float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	epsilon, err := getEnvFloat("BANDIT_DEFAULT_EPSILON", 0.05)
	if err != nil {
		return nil, err
	}
	totalSamples, err := getEnvFloat("BANDIT_DEFAULT_TOTAL_SAMPLES", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Multiarm Bandit API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Bandit: BanditConfig{
			DefaultSubtype:      getEnv("BANDIT_DEFAULT_SUBTYPE", "epsilon_first"),
			DefaultEpsilon:      epsilon,
			DefaultTotalSamples: totalSamples,
		},
	}

	if cfg.Bandit.DefaultEpsilon < 0 || cfg.Bandit.DefaultEpsilon > 1 {
		return nil, errors.New("BANDIT_DEFAULT_EPSILON must be in [0, 1]")
	}
	if cfg.Bandit.DefaultTotalSamples <= 0 {
		return nil, errors.New("BANDIT_DEFAULT_TOTAL_SAMPLES must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}

	return f, nil
}
