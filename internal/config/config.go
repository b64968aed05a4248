package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	Auth          AuthConfig
	Seed          SeedConfig
	Automation    AutomationConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
}

type AuthConfig struct {
	CacheTTLSeconds int
}

type SeedConfig struct {
	Enabled        bool
	TopologyPath   string
	CreateExamples bool
	AdminPassword  string
	RestBaseURL    string
}

type AutomationConfig struct {
	RunTimeoutSeconds int
	EventsSink        string
	EventsSource      string
	EventsToken       string
	EventsSecret      string
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

// Load reads configuration from the environment and any bound flags.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from the given viper instance, which may carry cobra flag bindings.
func LoadFrom(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("enms_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("enms_port", 5000)
	v.SetDefault("enms_db_path", "data/enms")
	v.SetDefault("enms_db_timing", false)
	v.SetDefault("enms_auth_cache_ttl_seconds", 60)
	v.SetDefault("enms_seed", true)
	v.SetDefault("enms_topology_path", "projects/usa.xlsx")
	v.SetDefault("enms_create_examples", true)
	v.SetDefault("enms_admin_password", "")
	v.SetDefault("enms_rest_base_url", "")
	v.SetDefault("enms_run_timeout_seconds", 300)
	v.SetDefault("enms_events_sink", "")
	v.SetDefault("enms_events_source", "enms")
	v.SetDefault("enms_events_token", "")
	v.SetDefault("enms_events_secret", "")
	v.SetDefault("enms_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "enms")
	v.SetDefault("enms_version", "dev")
	v.SetDefault("enms_otel_sampling_ratio", 1.0)
	v.SetDefault("enms_otel_metrics_console", false)

	port := v.GetInt("enms_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid ENMS_PORT: %d", port)
	}

	cacheTTL := v.GetInt("enms_auth_cache_ttl_seconds")
	if cacheTTL < 0 {
		cacheTTL = 0
	}

	runTimeout := v.GetInt("enms_run_timeout_seconds")
	if runTimeout <= 0 {
		runTimeout = 300
	}

	samplingRatio := v.GetFloat64("enms_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = "enms"
	}
	serviceVersion := strings.TrimSpace(v.GetString("enms_version"))
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	commonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	traceHeaders := mergeHeaderMaps(commonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers")))
	metricHeaders := mergeHeaderMaps(commonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers")))

	cfg := Config{
		Environment: resolveEnvironment(v),
		Server:      ServerConfig{Port: port},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("enms_db_path")),
			LogTiming: v.GetBool("enms_db_timing"),
		},
		Auth: AuthConfig{CacheTTLSeconds: cacheTTL},
		Seed: SeedConfig{
			Enabled:        v.GetBool("enms_seed"),
			TopologyPath:   strings.TrimSpace(v.GetString("enms_topology_path")),
			CreateExamples: v.GetBool("enms_create_examples"),
			AdminPassword:  v.GetString("enms_admin_password"),
			RestBaseURL:    strings.TrimRight(strings.TrimSpace(v.GetString("enms_rest_base_url")), "/"),
		},
		Automation: AutomationConfig{
			RunTimeoutSeconds: runTimeout,
			EventsSink:        strings.TrimSpace(v.GetString("enms_events_sink")),
			EventsSource:      strings.TrimSpace(v.GetString("enms_events_source")),
			EventsToken:       strings.TrimSpace(v.GetString("enms_events_token")),
			EventsSecret:      v.GetString("enms_events_secret"),
		},
		Observability: ObservabilityConfig{
			Enabled:           v.GetBool("enms_otel_enabled") || otlpEndpoint != "" || v.GetBool("enms_otel_metrics_console"),
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  traceHeaders,
			OTLPMetricHeaders: metricHeaders,
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    v.GetBool("enms_otel_metrics_console"),
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/enms"
	}
	if cfg.Automation.EventsSource == "" {
		cfg.Automation.EventsSource = "enms"
	}
	if cfg.Seed.RestBaseURL == "" {
		cfg.Seed.RestBaseURL = fmt.Sprintf("http://127.0.0.1:%d", port)
	}
	if cfg.Seed.AdminPassword == "" {
		if !cfg.IsLocalDevelopment() {
			return Config{}, fmt.Errorf("ENMS_ADMIN_PASSWORD is required outside local/dev environments")
		}
		cfg.Seed.AdminPassword = "admin"
	}

	return cfg, nil
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

func (c Config) AuthCacheTTL() time.Duration {
	return time.Duration(c.Auth.CacheTTLSeconds) * time.Second
}

func (c Config) RunTimeout() time.Duration {
	return time.Duration(c.Automation.RunTimeoutSeconds) * time.Second
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"enms_env", "app_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
