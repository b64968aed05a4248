package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"

	sqliteadapter "github.com/fr0stylo/enms/internal/adapters/sqlite"
	"github.com/fr0stylo/enms/internal/config"
	"github.com/fr0stylo/enms/internal/db"
	"github.com/fr0stylo/enms/internal/observability"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	database *db.Database
	store    *sqliteadapter.Store
	shutdown func(context.Context) error
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "enms",
		Short:         "Network automation inventory and workflow service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.String("db", "", "database path without .sqlite suffix (or ENMS_DB_PATH)")
	flags.Bool("db-timing", false, "log per-query latency on exit (or ENMS_DB_TIMING)")
	flags.String("topology", "", "topology workbook to seed devices and links from (or ENMS_TOPOLOGY_PATH)")
	bindFlag(v, "enms_db_path", root, "db")
	bindFlag(v, "enms_db_timing", root, "db-timing")
	bindFlag(v, "enms_topology_path", root, "topology")

	root.AddCommand(newServeCommand(v), newSeedCommand(v), newBackfillCommand(v))
	return root
}

// bindFlag lets an explicitly set flag override the environment.
func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func openApp(ctx context.Context, v *viper.Viper) (*app, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := slog.LevelInfo
	if cfg.IsLocalDevelopment() {
		level = slog.LevelDebug
	}
	log := slog.New(observability.WrapSlogHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	slog.SetDefault(log)

	shutdown, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVer:        cfg.Observability.ServiceVer,
		Environment:       cfg.Environment,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	})
	if err != nil {
		return nil, fmt.Errorf("setup opentelemetry: %w", err)
	}

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		database: database,
		store:    sqliteadapter.NewStore(database),
		shutdown: shutdown,
	}, nil
}

func (a *app) close(ctx context.Context) {
	if a.cfg.Database.LogTiming {
		for _, stat := range a.database.QueryLatencyStats() {
			a.log.Info("Query latency", "query", stat.Name, "count", stat.Count, "p50", stat.P50, "p95", stat.P95, "max", stat.Max)
		}
	}
	if err := a.database.Close(); err != nil {
		a.log.Error("Failed to close database", "error", err)
	}
	if err := a.shutdown(ctx); err != nil {
		a.log.Error("Failed to shut down OpenTelemetry", "error", err)
	}
}
