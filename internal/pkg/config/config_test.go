package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("dronegeo-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Geometry.CloseThreshold != 0.00015 {
		t.Errorf("expected close threshold 0.00015, got %v", cfg.Geometry.CloseThreshold)
	}
	if cfg.Geometry.StepSize != 0.00015 {
		t.Errorf("expected step size 0.00015, got %v", cfg.Geometry.StepSize)
	}
	if cfg.Telemetry.ServiceName != "dronegeo-test" {
		t.Errorf("expected service name dronegeo-test, got %q", cfg.Telemetry.ServiceName)
	}
	if cfg.NATS.Enabled || cfg.Valkey.Enabled {
		t.Error("expected optional adapters to be disabled by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DRONEGEO_SERVER_PORT", "9090")
	t.Setenv("DRONEGEO_GEOMETRY_STEP_SIZE", "0.0003")
	t.Setenv("DRONEGEO_SERVICE_UID", "s0000001")

	cfg, err := Load("dronegeo-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Geometry.StepSize != 0.0003 {
		t.Errorf("expected step size 0.0003, got %v", cfg.Geometry.StepSize)
	}
	if cfg.Service.UID != "s0000001" {
		t.Errorf("expected uid s0000001, got %q", cfg.Service.UID)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("DRONEGEO_GEOMETRY_CLOSE_THRESHOLD", "-1")

	_, err := Load("dronegeo-test")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "geometry.close_threshold") {
		t.Errorf("expected close_threshold in error, got %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Log:    LogConfig{Format: "xml"},
		NATS:   NATSConfig{Enabled: true},
		Valkey: ValkeyConfig{Enabled: true},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		"server.port",
		"server.read_timeout",
		"log.format",
		"service.uid",
		"service.external_url",
		"geometry.step_size",
		"nats.url",
		"valkey.addr",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in error, got %v", want, err)
		}
	}
}
