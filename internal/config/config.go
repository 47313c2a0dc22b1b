package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config (эскалация SOS и критических инцидентов)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Room Config - тайминги живого состояния события.
	// Значения по умолчанию подобраны, а не выведены: все настраиваемо.
	StalenessWindow  time.Duration `env:"ENTITY_STALENESS_WINDOW" envDefault:"60s"`
	SweepInterval    time.Duration `env:"ROOM_SWEEP_INTERVAL" envDefault:"15s"`
	SOSCooldown      time.Duration `env:"SOS_COOLDOWN" envDefault:"30s"`
	SOSMaxLifetime   time.Duration `env:"SOS_MAX_LIFETIME" envDefault:"10m"`
	RoomIdleGrace    time.Duration `env:"ROOM_IDLE_GRACE" envDefault:"5m"`
	HeatmapCapacity  int           `env:"HEATMAP_CAPACITY" envDefault:"500"`
	RoomQueueSize    int           `env:"ROOM_QUEUE_SIZE" envDefault:"256"`
	SubscriberBuffer int           `env:"SUBSCRIBER_BUFFER" envDefault:"64"`

	// Stats Config
	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"15s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StalenessWindow:   getEnvAsDuration("ENTITY_STALENESS_WINDOW", 60*time.Second),
		SweepInterval:     getEnvAsDuration("ROOM_SWEEP_INTERVAL", 15*time.Second),
		SOSCooldown:       getEnvAsDuration("SOS_COOLDOWN", 30*time.Second),
		SOSMaxLifetime:    getEnvAsDuration("SOS_MAX_LIFETIME", 10*time.Minute),
		RoomIdleGrace:     getEnvAsDuration("ROOM_IDLE_GRACE", 5*time.Minute),
		HeatmapCapacity:   getEnvAsInt("HEATMAP_CAPACITY", 500),
		RoomQueueSize:     getEnvAsInt("ROOM_QUEUE_SIZE", 256),
		SubscriberBuffer:  getEnvAsInt("SUBSCRIBER_BUFFER", 64),
		StatsCacheTTL:     getEnvAsDuration("STATS_CACHE_TTL", 15*time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
