package config

import (
	"os"
	"strconv"
	"strings"
)

// App holds runtime configuration derived from environment variables.
type App struct {
	DatabaseURL   string
	KafkaBrokers  string
	KafkaTopic    string
	APIPort       string
	Environment   string
	LogLevel      string
	CORSOrigins   []string
	RetentionDays int
	SweepCron     string
}

// FromEnv loads the application configuration from environment variables.
func FromEnv() App {
	return App{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "connection-events"),
		APIPort:       getEnv("API_PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "production"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   getCORSOrigins(),
		RetentionDays: getEnvInt("RETENTION_DAYS", 7),
		SweepCron:     getEnv("SWEEP_CRON", "0 3 * * *"),
	}
}

// BrokerList splits the configured Kafka brokers into individual addresses.
func (a App) BrokerList() []string {
	parts := strings.Split(a.KafkaBrokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func getCORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
