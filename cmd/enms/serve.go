package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fr0stylo/enms/internal/adapters/events"
	"github.com/fr0stylo/enms/internal/app/automation"
	"github.com/fr0stylo/enms/internal/app/ports"
	appservices "github.com/fr0stylo/enms/internal/app/services"
	"github.com/fr0stylo/enms/internal/server"
	"github.com/fr0stylo/enms/internal/server/routes"
	"github.com/fr0stylo/enms/pkg/eventpublisher"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Seed defaults when enabled and serve the REST API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, v)
			if err != nil {
				return err
			}
			defer a.close(context.WithoutCancel(ctx))
			return serve(ctx, a)
		},
	}
	cmd.Flags().Int("port", 0, "listen port (or ENMS_PORT)")
	cmd.Flags().Bool("seed", true, "seed default objects before serving (or ENMS_SEED)")
	if err := v.BindPFlag("enms_port", cmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag("enms_seed", cmd.Flags().Lookup("seed")); err != nil {
		panic(err)
	}
	return cmd
}

func serve(ctx context.Context, a *app) error {
	if a.cfg.Seed.Enabled {
		if err := newSeeder(a).Run(ctx); err != nil {
			return err
		}
	}

	executor := automation.NewExecutor(a.store, nil, http.DefaultClient, a.log)
	runs := appservices.NewJobRunService(a.store, a.store, executor, runEvents(a), a.cfg.RunTimeout(), a.log)
	auth := appservices.NewAuthService(a.store, a.cfg.AuthCacheTTL())

	srv := server.New(a.log)
	srv.RegisterRouter(routes.NewAPIRoutes(appservices.NewFactory(a.store), runs, auth))

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
		a.log.Info("Starting server", "port", a.cfg.Server.Port)
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Closing server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if waitErr := runs.Wait(shutdownCtx); waitErr != nil {
		a.log.Warn("Background job runs still in flight at shutdown", "error", waitErr)
	}
	return err
}

// runEvents returns nil when no sink is configured so runs skip publishing.
func runEvents(a *app) ports.RunEventPublisher {
	if a.cfg.Automation.EventsSink == "" {
		return nil
	}
	client := eventpublisher.Client{
		Endpoint: a.cfg.Automation.EventsSink,
		Token:    a.cfg.Automation.EventsToken,
		Secret:   a.cfg.Automation.EventsSecret,
		Timeout:  10 * time.Second,
	}
	return events.NewRunPublisher(client, a.cfg.Automation.EventsSource, a.cfg.Seed.RestBaseURL)
}
