package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

const (
	DefaultServiceName    = "enms"
	DefaultServiceVersion = "dev"

	metricExportInterval = 10 * time.Second
)

// OpenTelemetryConfig selects exporters for traces and metrics.
type OpenTelemetryConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	Environment       string
	SamplingRatio     float64
	MetricsConsole    bool
}

// ShutdownFunc flushes and stops the installed providers.
type ShutdownFunc func(context.Context) error

// SetupOpenTelemetry installs global trace and meter providers for enms. With
// telemetry disabled it installs nothing and returns a no-op shutdown.
func SetupOpenTelemetry(ctx context.Context, log *slog.Logger, cfg OpenTelemetryConfig) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if log == nil {
		log = slog.Default()
	}

	res, err := serviceResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var shutdowns []ShutdownFunc
	traceShutdown, err := setupTracing(ctx, cfg, res)
	if err != nil {
		return nil, err
	}
	if traceShutdown != nil {
		shutdowns = append(shutdowns, traceShutdown)
	}
	metricShutdown, err := setupMetrics(ctx, cfg, res)
	if err != nil {
		return nil, errors.Join(err, shutdownAll(ctx, shutdowns))
	}
	if metricShutdown != nil {
		shutdowns = append(shutdowns, metricShutdown)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	instrumentDefaultHTTPClient()

	service, _ := res.Set().Value(semconv.ServiceNameKey)
	log.Info("OpenTelemetry enabled",
		"service", service.Emit(),
		"traces_otlp", traceShutdown != nil,
		"metrics_otlp", cfg.OTLPEndpoint != "",
		"metrics_console", cfg.MetricsConsole,
	)

	return func(shutdownCtx context.Context) error {
		return shutdownAll(shutdownCtx, shutdowns)
	}, nil
}

func serviceResource(ctx context.Context, cfg OpenTelemetryConfig) (*resource.Resource, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = DefaultServiceName
	}
	version := strings.TrimSpace(cfg.ServiceVer)
	if version == "" {
		version = DefaultServiceVersion
	}
	attrs := []resource.Option{
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(semconv.ServiceName(name), semconv.ServiceVersion(version)),
	}
	if env := strings.TrimSpace(cfg.Environment); env != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.DeploymentEnvironmentName(env)))
	}
	res, err := resource.New(ctx, attrs...)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}
	return res, nil
}

// setupTracing exports spans over OTLP/HTTP. It returns a nil shutdown when
// neither an endpoint nor trace headers are configured.
func setupTracing(ctx context.Context, cfg OpenTelemetryConfig, res *resource.Resource) (ShutdownFunc, error) {
	if cfg.OTLPEndpoint == "" && len(cfg.OTLPTraceHeaders) == 0 {
		return nil, nil
	}
	var options []otlptracehttp.Option
	if cfg.OTLPEndpoint != "" {
		options = append(options, otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint))
	}
	if len(cfg.OTLPTraceHeaders) > 0 {
		options = append(options, otlptracehttp.WithHeaders(cfg.OTLPTraceHeaders))
	}
	exporter, err := otlptracehttp.New(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("create otlp trace exporter: %w", err)
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(configuredSampler(cfg.SamplingRatio)),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return provider.Shutdown, nil
}

// setupMetrics exports the enms instruments over OTLP/HTTP, to stdout, or both.
func setupMetrics(ctx context.Context, cfg OpenTelemetryConfig, res *resource.Resource) (ShutdownFunc, error) {
	var readers []sdkmetric.Option
	if cfg.OTLPEndpoint != "" || len(cfg.OTLPMetricHeaders) > 0 {
		var options []otlpmetrichttp.Option
		if cfg.OTLPEndpoint != "" {
			options = append(options, otlpmetrichttp.WithEndpointURL(cfg.OTLPEndpoint))
		}
		if len(cfg.OTLPMetricHeaders) > 0 {
			options = append(options, otlpmetrichttp.WithHeaders(cfg.OTLPMetricHeaders))
		}
		exporter, err := otlpmetrichttp.New(ctx, options...)
		if err != nil {
			return nil, fmt.Errorf("create otlp metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricExportInterval))))
	}
	if cfg.MetricsConsole {
		exporter, err := stdoutmetric.New(stdoutmetric.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricExportInterval))))
	}
	if len(readers) == 0 {
		return nil, nil
	}
	provider := sdkmetric.NewMeterProvider(append(readers, sdkmetric.WithResource(res))...)
	otel.SetMeterProvider(provider)
	return provider.Shutdown, nil
}

// shutdownAll stops providers in reverse order of installation.
func shutdownAll(ctx context.Context, shutdowns []ShutdownFunc) error {
	var errs []error
	for i := len(shutdowns) - 1; i >= 0; i-- {
		if err := shutdowns[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func instrumentDefaultHTTPClient() {
	http.DefaultTransport = otelhttp.NewTransport(http.DefaultTransport)
	http.DefaultClient.Transport = http.DefaultTransport
}

func configuredSampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}
