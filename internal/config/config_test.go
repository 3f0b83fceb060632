package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "REDIS_ADDR", "CACHE_TTL", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()
	if cfg.Port != "9090" {
		t.Fatalf("port=%q", cfg.Port)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("redis=%q", cfg.RedisAddr)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("ttl=%v", cfg.CacheTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("origins=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfig_ParsesTypedValues(t *testing.T) {
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_TTL", "45s")
	t.Setenv("CORS_ORIGINS", "https://app.conectezap.com, http://localhost:5173,")

	cfg := LoadConfig()
	if cfg.RedisDB != 3 {
		t.Fatalf("redis db=%d", cfg.RedisDB)
	}
	if cfg.CacheTTL != 45*time.Second {
		t.Fatalf("ttl=%v", cfg.CacheTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:5173" {
		t.Fatalf("origins=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfig_BadNumbersFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "x")
	t.Setenv("CACHE_TTL", "soon")

	cfg := LoadConfig()
	if cfg.RedisDB != 0 || cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("db=%d ttl=%v", cfg.RedisDB, cfg.CacheTTL)
	}
}
