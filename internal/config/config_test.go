package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"AKSHARA_DB", "AKSHARA_LOG_LEVEL", "AKSHARA_LOG_FILE", "AKSHARA_REVIEW_LIMIT", "AKSHARA_CURRICULUM"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.ReviewLimit != 20 {
		t.Errorf("ReviewLimit = %d, want 20", cfg.ReviewLimit)
	}
	if cfg.DBPath != "" || cfg.Curriculum != "" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AKSHARA_DB", "/tmp/a.db")
	t.Setenv("AKSHARA_LOG_LEVEL", "debug")
	t.Setenv("AKSHARA_REVIEW_LIMIT", "5")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/a.db" || cfg.LogLevel != "debug" || cfg.ReviewLimit != 5 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"limit not a number", "AKSHARA_REVIEW_LIMIT", "many", "parse env:"},
		{"limit too large", "AKSHARA_REVIEW_LIMIT", "21", "validate config:"},
		{"limit zero", "AKSHARA_REVIEW_LIMIT", "0", "validate config:"},
		{"bad level", "AKSHARA_LOG_LEVEL", "loud", "validate config:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}
