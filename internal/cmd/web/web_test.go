package web

import (
	"flag"
	"io"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.SiteURL != "https://www.fromvivianmusic.com" {
		t.Fatalf("SiteURL = %q, want %q", cfg.SiteURL, "https://www.fromvivianmusic.com")
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("FVM_WEB_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("FVM_WEB_SITE_URL", "https://staging.example.test")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9000")
	}
	if cfg.SiteURL != "https://staging.example.test" {
		t.Fatalf("SiteURL = %q, want %q", cfg.SiteURL, "https://staging.example.test")
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("FVM_WEB_HTTP_ADDR", "127.0.0.1:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-site-url", "http://localhost:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.SiteURL != "http://localhost:9002" {
		t.Fatalf("SiteURL = %q, want %q", cfg.SiteURL, "http://localhost:9002")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-auth-addr", "x"}); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestParseConfigKeepsEnvironmentForUnsetFlags(t *testing.T) {
	t.Setenv("FVM_WEB_SITE_URL", "https://staging.example.test")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9003"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9003" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9003")
	}
	if cfg.SiteURL != "https://staging.example.test" {
		t.Fatalf("SiteURL = %q, want %q", cfg.SiteURL, "https://staging.example.test")
	}
}
