package otel_test

import (
	"context"
	"testing"

	"github.com/fromvivianmusic/fvm-web/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("FVM_OTEL_ENDPOINT", "")
	t.Setenv("FVM_OTEL_ENABLED", "true")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("FVM_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("FVM_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	t.Setenv("FVM_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("FVM_OTEL_ENABLED", "true")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidSampleRatio(t *testing.T) {
	t.Setenv("FVM_OTEL_SAMPLE_RATIO", "half")

	if _, err := otel.Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected invalid sample ratio error")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("FVM_OTEL_ENDPOINT", "")

	settings, err := otel.LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if !settings.Enabled {
		t.Fatal("expected tracing enabled by default")
	}
	if settings.SampleRatio != 1 {
		t.Fatalf("SampleRatio = %v, want 1", settings.SampleRatio)
	}
}
