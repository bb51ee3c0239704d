package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.TZOffsetMinutes != 345 {
		t.Errorf("TZOffsetMinutes = %d, want 345", cfg.TZOffsetMinutes)
	}
	if !cfg.StrictDays {
		t.Error("StrictDays = false, want true")
	}
	if cfg.DefaultLang != LangEnglish {
		t.Errorf("DefaultLang = %q, want %q", cfg.DefaultLang, LangEnglish)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DATABASE_PATH", "/data/test.db")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("TZ_OFFSET_MINUTES", "330")
	os.Setenv("STRICT_DAYS", "false")
	os.Setenv("DEFAULT_LANG", "ne")
	os.Setenv("RATE_LIMIT_RPS", "2.5")
	os.Setenv("RATE_LIMIT_BURST", "5")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/test.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/test.db")
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.TZOffsetMinutes != 330 {
		t.Errorf("TZOffsetMinutes = %d, want 330", cfg.TZOffsetMinutes)
	}
	if cfg.StrictDays {
		t.Error("StrictDays = true, want false")
	}
	if cfg.DefaultLang != LangNepali {
		t.Errorf("DefaultLang = %q, want %q", cfg.DefaultLang, LangNepali)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 5 {
		t.Errorf("rate limit = %v/%d, want 2.5/5", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func validConfig() Config {
	return Config{
		Port:            8080,
		Env:             EnvDevelopment,
		DatabasePath:    "./data/test.db",
		LogLevel:        "info",
		LogFormat:       "text",
		TZOffsetMinutes: 345,
		StrictDays:      true,
		DefaultLang:     LangEnglish,
		RateLimitRPS:    10,
		RateLimitBurst:  20,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"valid production config", func(c *Config) {
			c.Env = EnvProduction
			c.APIKey = "required-in-prod"
		}, false},
		{"production requires API key", func(c *Config) { c.Env = EnvProduction }, true},
		{"invalid port - too low", func(c *Config) { c.Port = 0 }, true},
		{"invalid port - too high", func(c *Config) { c.Port = 70000 }, true},
		{"invalid environment", func(c *Config) { c.Env = "invalid" }, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"empty database path", func(c *Config) { c.DatabasePath = "" }, true},
		{"offset too far east", func(c *Config) { c.TZOffsetMinutes = 15 * 60 }, true},
		{"negative offset", func(c *Config) { c.TZOffsetMinutes = -300 }, false},
		{"unsupported language", func(c *Config) { c.DefaultLang = "hi" }, true},
		{"rate limit without burst", func(c *Config) { c.RateLimitBurst = 0 }, true},
		{"rate limit disabled", func(c *Config) {
			c.RateLimitRPS = 0
			c.RateLimitBurst = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Location(t *testing.T) {
	tests := []struct {
		minutes  int
		wantName string
	}{
		{345, "NPT"},
		{330, "UTC+05:30"},
		{-30, "UTC-00:30"},
		{0, "UTC+00:00"},
	}

	instant := time.Date(2025, time.April, 13, 18, 30, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			cfg := &Config{TZOffsetMinutes: tt.minutes}
			name, offset := instant.In(cfg.Location()).Zone()
			if name != tt.wantName {
				t.Errorf("zone name = %q, want %q", name, tt.wantName)
			}
			if offset != tt.minutes*60 {
				t.Errorf("zone offset = %d, want %d", offset, tt.minutes*60)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "DATABASE_PATH", "API_KEY",
		"LOG_LEVEL", "LOG_FORMAT",
		"TZ_OFFSET_MINUTES", "STRICT_DAYS", "DEFAULT_LANG",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
