package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "API_BASE_URL", "THEME_STORE", "CLOCK_INTERVAL", "NOTICE_DISMISS_AFTER")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5000/api" {
		t.Fatalf("expected local api default, got %q", cfg.APIBaseURL)
	}
	if cfg.ThemeStore != ThemeStoreMemory {
		t.Fatalf("expected memory theme store, got %q", cfg.ThemeStore)
	}
	if cfg.ClockInterval != time.Second {
		t.Fatalf("expected 1s clock interval, got %v", cfg.ClockInterval)
	}
	if cfg.NoticeDismissAfter != 5*time.Second {
		t.Fatalf("expected 5s notice delay, got %v", cfg.NoticeDismissAfter)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	unsetEnv(t, "NOTICE_DISMISS_AFTER")
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("THEME_STORE", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CLOCK_INTERVAL", "1m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("unexpected base url %q", cfg.APIBaseURL)
	}
	if cfg.ClockInterval != time.Minute {
		t.Fatalf("unexpected interval %v", cfg.ClockInterval)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{ThemeStore: ThemeStoreMemory, ClockInterval: time.Second}, false},
		{"sqlite", Config{ThemeStore: ThemeStoreSQLite, ClockInterval: time.Second}, false},
		{"redis without addr", Config{ThemeStore: ThemeStoreRedis, ClockInterval: time.Second}, true},
		{"postgres without url", Config{ThemeStore: ThemeStorePostgres, ClockInterval: time.Second}, true},
		{"postgres", Config{ThemeStore: ThemeStorePostgres, DatabaseURL: "postgres://x", ClockInterval: time.Second}, false},
		{"unknown store", Config{ThemeStore: "etcd", ClockInterval: time.Second}, true},
		{"zero interval", Config{ThemeStore: ThemeStoreMemory}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
