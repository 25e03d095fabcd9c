package main

import (
	"context"
	"database/sql"

	"github.com/spf13/cobra"

	"pillbox/internal/platform/store/migrations"
)

func (a *app) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
	}
	cmd.AddCommand(
		a.migrateStep("up", "Apply every pending migration", migrations.Up),
		a.migrateStep("down", "Roll back the most recent migration", migrations.Down),
		a.migrateStep("status", "List migrations and whether they are applied", migrations.Status),
	)
	return cmd
}

func (a *app) migrateStep(use, short string, run func(context.Context, *sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := migrations.Open(a.cfg.Prefix("SERVICE_PGSQL_").MustString("DBURL"))
			if err != nil {
				return err
			}
			defer db.Close()

			if err := run(cmd.Context(), db); err != nil {
				return err
			}
			a.log.Info().Str("step", use).Msg("migrate done")
			return nil
		},
	}
}
