package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Kafka    KafkaConfig
	Sweeper  SweeperConfig
}

// DatabaseConfig mirrors the connection settings of the deployment environment.
// URL wins over the composed local MySQL settings, which win over SQLitePath.
type DatabaseConfig struct {
	URL           string
	UseLocalMySQL bool
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SQLitePath    string
}

type AuthConfig struct {
	SecretKey          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type SweeperConfig struct {
	Schedule string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			URL:           os.Getenv("DATABASE_URL"),
			UseLocalMySQL: getEnv("USE_LOCAL_MYSQL", "0") == "1",
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "3306"),
			User:          getEnv("DB_USER", "root"),
			Password:      os.Getenv("DB_PASS"),
			Name:          getEnv("DB_NAME", "covid_beds"),
			SQLitePath:    getEnv("SQLITE_PATH", "local_dev.db"),
		},
		Auth: AuthConfig{
			SecretKey:          getEnv("SECRET_KEY", "dev-secret-key-change-this"),
			AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "24h"), 24*time.Hour),
			RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "168h"), 168*time.Hour),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "5000"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Kafka: KafkaConfig{
			Brokers: parseList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_TOPIC", "bed_bookings"),
		},
		Sweeper: SweeperConfig{
			Schedule: getEnv("TOKEN_SWEEP_SCHEDULE", "@hourly"),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		fmt.Printf("Warning: Invalid duration format '%s', using %s\n", s, fallback)
		return fallback
	}
	return duration
}

func parseList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
