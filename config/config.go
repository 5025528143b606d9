package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort         string        `validate:"required,numeric"`
	AppMode         string        `validate:"oneof=debug release test"`
	MaxBodyBytes    int64         `validate:"gt=0"`
	ReadTimeout     time.Duration `validate:"gte=0"`
	WriteTimeout    time.Duration `validate:"gte=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	EventsEnabled   bool
	EventsChannel   string `validate:"required_if=EventsEnabled true"`
	RedisHost       string `validate:"required_if=EventsEnabled true"`
	RedisPort       string `validate:"omitempty,numeric"`
	RedisPassword   string
	RedisDB         int `validate:"gte=0"`

	OutboxBuffer        int           `validate:"gt=0"`
	OutboxMaxRetries    int           `validate:"gte=0"`
	OutboxRetryInterval time.Duration `validate:"gte=0"`
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:         getEnv("APP_PORT", "3000"),
		AppMode:         getEnv("APP_MODE", "debug"),
		MaxBodyBytes:    getEnvAsInt64("MAX_BODY_BYTES", 1<<20),
		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		EventsEnabled:   getEnvAsBool("EVENTS_ENABLED", false),
		EventsChannel:   getEnv("EVENTS_CHANNEL", "chatterbox:messages"),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),

		OutboxBuffer:        getEnvAsInt("OUTBOX_BUFFER", 256),
		OutboxMaxRetries:    getEnvAsInt("OUTBOX_MAX_RETRIES", 3),
		OutboxRetryInterval: getEnvAsDuration("OUTBOX_RETRY_INTERVAL", 200*time.Millisecond),
	}
}

// Validate reports the first invalid field, if any.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}
