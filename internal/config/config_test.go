package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "USE_LOCAL_MYSQL", "DB_USER", "DB_NAME", "PORT", "SECRET_KEY", "KAFKA_BROKERS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Database.URL != "" {
		t.Errorf("expected empty database url, got %q", cfg.Database.URL)
	}
	if cfg.Database.UseLocalMySQL {
		t.Error("expected local mysql to be disabled by default")
	}
	if cfg.Database.User != "root" || cfg.Database.Name != "covid_beds" {
		t.Errorf("unexpected local mysql defaults: %+v", cfg.Database)
	}
	if cfg.Server.Port != "5000" {
		t.Errorf("expected port 5000, got %q", cfg.Server.Port)
	}
	if cfg.Auth.SecretKey == "" {
		t.Error("expected a development secret key")
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("expected no kafka brokers, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/beds")
	t.Setenv("USE_LOCAL_MYSQL", "1")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "30m")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg := LoadConfig()

	if cfg.Database.URL != "postgres://u:p@db:5432/beds" {
		t.Errorf("unexpected url %q", cfg.Database.URL)
	}
	if !cfg.Database.UseLocalMySQL {
		t.Error("expected local mysql flag to be set")
	}
	if cfg.Database.Password != "secret" {
		t.Errorf("expected DB_PASS to be read, got %q", cfg.Database.Password)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenExpiry != 30*time.Minute {
		t.Errorf("expected 30m expiry, got %s", cfg.Auth.AccessTokenExpiry)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Errorf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
}

func TestParseDuration_InvalidFallsBack(t *testing.T) {
	if got := parseDuration("soon", time.Hour); got != time.Hour {
		t.Errorf("expected fallback of 1h, got %s", got)
	}
}
