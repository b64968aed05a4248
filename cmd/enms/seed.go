package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fr0stylo/enms/internal/adapters/spreadsheet"
	"github.com/fr0stylo/enms/internal/app/seed"
)

func newSeedCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default users, pools, parameters, topology and example workflows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer a.close(context.WithoutCancel(cmd.Context()))
			return newSeeder(a).Run(cmd.Context())
		},
	}
	cmd.Flags().Bool("examples", true, "create the example services and workflows (or ENMS_CREATE_EXAMPLES)")
	if err := v.BindPFlag("enms_create_examples", cmd.Flags().Lookup("examples")); err != nil {
		panic(err)
	}
	return cmd
}

func newSeeder(a *app) *seed.Seeder {
	return seed.New(a.store, spreadsheet.Open, a.log, seed.Config{
		TopologyPath:   a.cfg.Seed.TopologyPath,
		CreateExamples: a.cfg.Seed.CreateExamples,
		AdminPassword:  a.cfg.Seed.AdminPassword,
		RestBaseURL:    a.cfg.Seed.RestBaseURL,
	})
}
