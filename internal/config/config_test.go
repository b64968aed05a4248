package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaultsForLocalDevelopment(t *testing.T) {
	t.Setenv("ENMS_ENV", "dev")
	t.Setenv("ENMS_ADMIN_PASSWORD", "")

	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Seed.AdminPassword != "admin" {
		t.Fatalf("expected local fallback admin password, got %q", cfg.Seed.AdminPassword)
	}
	if cfg.Server.Port != 5000 {
		t.Fatalf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Seed.TopologyPath != "projects/usa.xlsx" {
		t.Fatalf("unexpected topology path %q", cfg.Seed.TopologyPath)
	}
	if !cfg.Seed.CreateExamples {
		t.Fatal("expected example workflows enabled by default")
	}
	if cfg.AuthCacheTTL().Seconds() != 60 {
		t.Fatalf("unexpected auth cache ttl %s", cfg.AuthCacheTTL())
	}
}

func TestLoadRequiresAdminPasswordOutsideLocal(t *testing.T) {
	t.Setenv("ENMS_ENV", "production")
	t.Setenv("ENMS_ADMIN_PASSWORD", "")

	_, err := LoadFrom(viper.New())
	if err == nil {
		t.Fatal("expected error for missing admin password in production")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("ENMS_PORT", "70000")

	if _, err := LoadFrom(viper.New()); err == nil {
		t.Fatal("expected invalid port error")
	}
}

func TestLoadParsesOTLPTraceHeaders(t *testing.T) {
	t.Setenv("ENMS_ENV", "dev")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer common,x-org=abc")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_HEADERS", "x-org=trace-only")

	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Observability.Enabled {
		t.Fatal("expected observability enabled when an endpoint is set")
	}
	if cfg.Observability.OTLPTraceHeaders["authorization"] != "Bearer common" {
		t.Fatalf("expected common header, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPTraceHeaders["x-org"] != "trace-only" {
		t.Fatalf("expected trace header override, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
}

func TestLoadMergesOTLPMetricHeaders(t *testing.T) {
	t.Setenv("ENMS_ENV", "dev")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer common,x-org=abc")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_HEADERS", "x-org=trace-only")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_HEADERS", "x-org=metrics-only,x-tenant=t1")

	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	metrics := cfg.Observability.OTLPMetricHeaders
	if metrics["authorization"] != "Bearer common" || metrics["x-org"] != "metrics-only" || metrics["x-tenant"] != "t1" {
		t.Fatalf("unexpected metric headers: %#v", metrics)
	}
	if cfg.Observability.OTLPTraceHeaders["x-org"] != "trace-only" {
		t.Fatalf("metric override leaked into trace headers: %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if _, ok := cfg.Observability.OTLPTraceHeaders["x-tenant"]; ok {
		t.Fatalf("metric-only header leaked into trace headers: %#v", cfg.Observability.OTLPTraceHeaders)
	}
}

func TestLoadClampsRunTimeout(t *testing.T) {
	t.Setenv("ENMS_RUN_TIMEOUT_SECONDS", "-5")

	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RunTimeout().Seconds() != 300 {
		t.Fatalf("expected fallback run timeout, got %s", cfg.RunTimeout())
	}
}

func TestLoadDerivesRestBaseURLFromPort(t *testing.T) {
	t.Setenv("ENMS_ENV", "dev")
	t.Setenv("ENMS_PORT", "5050")

	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Seed.RestBaseURL != "http://127.0.0.1:5050" {
		t.Fatalf("unexpected rest base url %q", cfg.Seed.RestBaseURL)
	}

	t.Setenv("ENMS_REST_BASE_URL", "http://enms.lab:5000/")
	cfg, err = LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Seed.RestBaseURL != "http://enms.lab:5000" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Seed.RestBaseURL)
	}
}
