package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName     string
	AppEnv      string
	AppPort     string
	RedisURL    string
	SnapshotKey string
	JWTSecret   string
	FeeRate     float64
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an
// optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LINGORA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Lingora API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("snapshot.key", "lingora:snapshot")
	v.SetDefault("fee.rate", 0.15)

	cfg := Config{
		AppName:     v.GetString("app.name"),
		AppEnv:      v.GetString("app.env"),
		AppPort:     v.GetString("app.port"),
		RedisURL:    v.GetString("redis.url"),
		SnapshotKey: v.GetString("snapshot.key"),
		JWTSecret:   v.GetString("jwt.secret"),
		FeeRate:     v.GetFloat64("fee.rate"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.FeeRate <= 0 || cfg.FeeRate >= 1 {
		return Config{}, fmt.Errorf("fee rate must be between 0 and 1")
	}

	return cfg, nil
}
