package observability

import (
	"context"
	"testing"

	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestServiceResourceDefaultsToEnms(t *testing.T) {
	res, err := serviceResource(context.Background(), OpenTelemetryConfig{Environment: "staging"})
	if err != nil {
		t.Fatalf("serviceResource: %v", err)
	}
	set := res.Set()
	if name, _ := set.Value(semconv.ServiceNameKey); name.AsString() != DefaultServiceName {
		t.Fatalf("unexpected service name %q", name.AsString())
	}
	if version, _ := set.Value(semconv.ServiceVersionKey); version.AsString() != DefaultServiceVersion {
		t.Fatalf("unexpected service version %q", version.AsString())
	}
	if env, _ := set.Value(semconv.DeploymentEnvironmentNameKey); env.AsString() != "staging" {
		t.Fatalf("unexpected environment %q", env.AsString())
	}
}

func TestServiceResourceUsesConfiguredName(t *testing.T) {
	res, err := serviceResource(context.Background(), OpenTelemetryConfig{ServiceName: "enms-lab", ServiceVer: "1.2.0"})
	if err != nil {
		t.Fatalf("serviceResource: %v", err)
	}
	if name, _ := res.Set().Value(semconv.ServiceNameKey); name.AsString() != "enms-lab" {
		t.Fatalf("unexpected service name %q", name.AsString())
	}
	if _, ok := res.Set().Value(semconv.DeploymentEnvironmentNameKey); ok {
		t.Fatal("expected no environment attribute when unset")
	}
}

func TestSetupOpenTelemetryDisabledIsNoop(t *testing.T) {
	shutdown, err := SetupOpenTelemetry(context.Background(), nil, OpenTelemetryConfig{})
	if err != nil {
		t.Fatalf("SetupOpenTelemetry: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
