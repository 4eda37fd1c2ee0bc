package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port    int    `env:"TEST_PORT" envDefault:"123"`
	SiteURL string `env:"TEST_SITE_URL" envDefault:"https://example.com"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.SiteURL != "https://example.com" {
		t.Fatalf("expected default site url, got %q", cfg.SiteURL)
	}
}

func TestParseEnvReadsPrefixedVariables(t *testing.T) {
	t.Setenv("FVM_TEST_PORT", "9090")
	t.Setenv("TEST_SITE_URL", "https://ignored.example.com")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("expected prefixed port 9090, got %d", cfg.Port)
	}
	if cfg.SiteURL != "https://example.com" {
		t.Fatalf("unprefixed variable should be ignored, got %q", cfg.SiteURL)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FVM_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
