package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newBackfillCommand(v *viper.Viper) *cobra.Command {
	var limit int
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "backfill-events JOB",
		Short: "Republish finished runs of a job to the configured CDEvents sink",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, v)
			if err != nil {
				return err
			}
			defer a.close(context.WithoutCancel(ctx))

			publisher := runEvents(a)
			if publisher == nil && !dryRun {
				return fmt.Errorf("ENMS_EVENTS_SINK is required unless --dry-run is set")
			}

			name := strings.TrimSpace(args[0])
			job, err := a.store.GetJob(ctx, name)
			if err != nil {
				return err
			}
			runs, err := a.store.ListJobRuns(ctx, job.Name, limit)
			if err != nil {
				return err
			}

			published := 0
			for _, run := range runs {
				if !run.Finished() {
					a.log.Info("Skip unfinished run", "job", job.Name, "run_id", run.ID)
					continue
				}
				if dryRun {
					a.log.Info("Would publish run", "job", job.Name, "run_id", run.ID, "success", run.Success)
					published++
					continue
				}
				if err := publisher.RunFinished(ctx, job, run); err != nil {
					return fmt.Errorf("publish run %s: %w", run.ID, err)
				}
				published++
			}
			a.log.Info("Backfill complete", "job", job.Name, "runs", len(runs), "published", published, "dry_run", dryRun)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "most recent runs to republish")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the runs without publishing")
	return cmd
}
