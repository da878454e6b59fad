package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("JWT_SECRET", strings.Repeat("s", 40))
	t.Setenv("DB_URI", "mongodb://db:27017")
	t.Setenv("RATE_LIMIT_MAX", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://db:27017" {
		t.Errorf("expected DB_URI override, got %s", cfg.Mongo.URI)
	}
	if cfg.RateLimit.Max != 5 {
		t.Errorf("expected rate limit 5, got %d", cfg.RateLimit.Max)
	}
	if cfg.RateLimit.Window != 15*time.Minute {
		t.Errorf("expected default window 15m, got %s", cfg.RateLimit.Window)
	}
	if cfg.HTTPServer.BodyLimitKB != 15 {
		t.Errorf("expected default body limit 15kb, got %d", cfg.HTTPServer.BodyLimitKB)
	}
	if cfg.JWT.ExpiresIn != 90*24*time.Hour {
		t.Errorf("expected 90 day token lifetime, got %s", cfg.JWT.ExpiresIn)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWT:       JWTConfig{Secret: strings.Repeat("x", 32), ExpiresIn: time.Hour},
			Mongo:     MongoConfig{URI: "mongodb://localhost", Database: "natours"},
			RateLimit: RateLimitConfig{Max: 100, Window: time.Minute},
		}
	}

	if err := validate(valid()); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := map[string]func(c *Config){
		"missing secret": func(c *Config) { c.JWT.Secret = "" },
		"short secret":   func(c *Config) { c.JWT.Secret = "short" },
		"no expiry":      func(c *Config) { c.JWT.ExpiresIn = 0 },
		"no database":    func(c *Config) { c.Mongo.Database = "" },
		"no rate limit":  func(c *Config) { c.RateLimit.Max = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			if err := validate(c); err == nil {
				t.Errorf("expected error for %s", name)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	viper.Reset()
	viper.AutomaticEnv()
	t.Setenv("SMTP_SECRET_TEST", "from-env")

	if got := expandEnvVar("${SMTP_SECRET_TEST}"); got != "from-env" {
		t.Errorf("expected from-env, got %q", got)
	}
	if got := expandEnvVar("literal"); got != "literal" {
		t.Errorf("expected literal, got %q", got)
	}
}
