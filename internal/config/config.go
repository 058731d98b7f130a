package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// All runtime configuration comes from environment variables. JWT_SECRET has
// no default on purpose: the signing key must be injected per deployment and
// startup fails without it.

type Config struct {
	ServerPort string `mapstructure:"PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	KafkaBroker string `mapstructure:"KAFKA_BROKER"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	RecognitionURL        string `mapstructure:"RECOGNITION_URL"`
	RecognitionTimeoutSec int    `mapstructure:"RECOGNITION_TIMEOUT_SEC"`
}

func (c Config) RecognitionTimeout() time.Duration {
	return time.Duration(c.RecognitionTimeoutSec) * time.Second
}

// Load reads configuration from the environment.
func Load() (config Config, err error) {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "attendance_db")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("KAFKA_BROKER", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RECOGNITION_URL", "http://localhost:5000")
	viper.SetDefault("RECOGNITION_TIMEOUT_SEC", 10)

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	if err = viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config.JWTSecret == "" {
		return config, errors.New("JWT_SECRET is required")
	}

	return config, nil
}
